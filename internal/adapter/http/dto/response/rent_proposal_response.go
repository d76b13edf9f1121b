package response

import (
	"time"

	"splitnest/internal/domain/entities"
	"splitnest/internal/usecase"
)

type AllocationResponse struct {
	UserID         string     `json:"user_id"`
	Amount         float64    `json:"amount"`
	ApprovalStatus string     `json:"approval_status"`
	DeclineReason  string     `json:"decline_reason,omitempty"`
	RespondedAt    *time.Time `json:"responded_at,omitempty"`
}

type RentProposalResponse struct {
	ID                  string               `json:"id"`
	HouseID             string               `json:"house_id"`
	RentConfigurationID string               `json:"rent_configuration_id"`
	CreatedBy           string               `json:"created_by"`
	Status              string               `json:"status"`
	Allocations         []AllocationResponse `json:"allocations"`
	CreatedAt           time.Time            `json:"created_at"`
	SubmittedAt         *time.Time           `json:"submitted_at,omitempty"`
	ResolvedAt          *time.Time           `json:"resolved_at,omitempty"`
}

// DraftResponse is a proposal plus the advisory remainder shown while the
// creator edits the draft ("left to allocate").
type DraftResponse struct {
	RentProposalResponse
	Remaining float64 `json:"remaining"`
}

// ApprovalViewResponse is a proposal scoped for an approving member: the
// full proposal plus the caller's own allocation.
type ApprovalViewResponse struct {
	Proposal     RentProposalResponse `json:"proposal"`
	MyAllocation AllocationResponse   `json:"my_allocation"`
}

func FromAllocation(a entities.Allocation) AllocationResponse {
	return AllocationResponse{
		UserID:         a.UserID,
		Amount:         a.Amount.InexactFloat64(),
		ApprovalStatus: string(a.ApprovalStatus),
		DeclineReason:  a.DeclineReason,
		RespondedAt:    a.RespondedAt,
	}
}

func FromRentProposal(p entities.RentProposal) RentProposalResponse {
	allocs := make([]AllocationResponse, len(p.Allocations))
	for i, a := range p.Allocations {
		allocs[i] = FromAllocation(a)
	}
	return RentProposalResponse{
		ID:                  p.ID,
		HouseID:             p.HouseID,
		RentConfigurationID: p.RentConfigurationID,
		CreatedBy:           p.CreatedBy,
		Status:              string(p.Status),
		Allocations:         allocs,
		CreatedAt:           p.CreatedAt,
		SubmittedAt:         p.SubmittedAt,
		ResolvedAt:          p.ResolvedAt,
	}
}

func FromRentProposals(ps []entities.RentProposal) []RentProposalResponse {
	out := make([]RentProposalResponse, len(ps))
	for i, p := range ps {
		out[i] = FromRentProposal(p)
	}
	return out
}

func FromDraftResult(res usecase.DraftResult) DraftResponse {
	return DraftResponse{
		RentProposalResponse: FromRentProposal(res.Proposal),
		Remaining:            res.Remaining.InexactFloat64(),
	}
}

func FromApprovalView(p entities.RentProposal, mine entities.Allocation) ApprovalViewResponse {
	return ApprovalViewResponse{
		Proposal:     FromRentProposal(p),
		MyAllocation: FromAllocation(mine),
	}
}
