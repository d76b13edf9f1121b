package response

import (
	"time"

	"splitnest/internal/usecase"
)

type PendingApprovalResponse struct {
	ProposalID  string     `json:"proposal_id"`
	HouseID     string     `json:"house_id"`
	HouseName   string     `json:"house_name"`
	Amount      float64    `json:"amount"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
}

func FromPendingApprovals(pending []usecase.PendingApproval) []PendingApprovalResponse {
	out := make([]PendingApprovalResponse, len(pending))
	for i, p := range pending {
		out[i] = PendingApprovalResponse{
			ProposalID:  p.ProposalID,
			HouseID:     p.HouseID,
			HouseName:   p.HouseName,
			Amount:      p.Amount.InexactFloat64(),
			SubmittedAt: p.SubmittedAt,
		}
	}
	return out
}
