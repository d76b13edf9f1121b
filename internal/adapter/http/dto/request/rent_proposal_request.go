package request

import (
	"strings"

	"github.com/shopspring/decimal"

	"splitnest/internal/domain/entities"
)

type AllocationRequest struct {
	UserID string  `json:"user_id" binding:"required"`
	Amount float64 `json:"amount"`
}

// RentProposalRequest is the payload for creating or replacing a draft's
// allocation set.
type RentProposalRequest struct {
	Allocations []AllocationRequest `json:"allocations" binding:"required,min=1,dive"`
}

// ResolveAllocations converts the payload into domain allocations with
// cent-rounded amounts.
func (r RentProposalRequest) ResolveAllocations() []entities.Allocation {
	allocs := make([]entities.Allocation, len(r.Allocations))
	for i, a := range r.Allocations {
		allocs[i] = entities.Allocation{
			UserID: strings.TrimSpace(a.UserID),
			Amount: decimal.NewFromFloat(a.Amount).Round(2),
		}
	}
	return allocs
}

// DeclineRequest optionally carries the member's reason for declining.
type DeclineRequest struct {
	Reason string `json:"reason"`
}
