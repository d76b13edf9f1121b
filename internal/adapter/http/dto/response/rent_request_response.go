package response

import (
	"time"

	"splitnest/internal/domain/entities"
)

type RentRequestResponse struct {
	ID                  string     `json:"id"`
	HouseID             string     `json:"house_id"`
	RentConfigurationID string     `json:"rent_configuration_id"`
	MonthlyRentAmount   float64    `json:"monthly_rent_amount"`
	RentDueDay          int        `json:"rent_due_day"`
	Status              string     `json:"status"`
	ClaimedBy           string     `json:"claimed_by,omitempty"`
	ClaimedAt           *time.Time `json:"claimed_at,omitempty"`
	ActiveProposalID    string     `json:"active_proposal_id,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func FromRentRequest(req entities.RentAllocationRequest) RentRequestResponse {
	return RentRequestResponse{
		ID:                  req.ID,
		HouseID:             req.HouseID,
		RentConfigurationID: req.RentConfigurationID,
		MonthlyRentAmount:   req.MonthlyRentAmount.InexactFloat64(),
		RentDueDay:          req.RentDueDay,
		Status:              string(req.Status),
		ClaimedBy:           req.ClaimedBy,
		ClaimedAt:           req.ClaimedAt,
		ActiveProposalID:    req.ActiveProposalID,
		CreatedAt:           req.CreatedAt,
		UpdatedAt:           req.UpdatedAt,
	}
}
