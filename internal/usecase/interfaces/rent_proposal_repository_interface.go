package interfaces

import (
	"context"
	"time"

	"splitnest/internal/domain/entities"
)

// IRentProposalRepository abstracts DynamoDB persistence for RentProposal.
//
// Mutations that depend on the proposal's state are conditional writes
// guarded by the current status (and, for decisions, by the allocation's
// current approval status). As with IRentRequestRepository, a failed
// condition yields the zero-value entity rather than an error.

type IRentProposalRepository interface {
	// Create writes a new proposal. Condition: no item with this id exists.
	Create(ctx context.Context, p entities.RentProposal) (entities.RentProposal, error)

	// GetByID returns the proposal, or the zero value when absent.
	GetByID(ctx context.Context, id string) (entities.RentProposal, error)

	// GetActiveByHouseID returns the house's draft or submitted proposal,
	// or the zero value when the house has none.
	GetActiveByHouseID(ctx context.Context, houseID string) (entities.RentProposal, error)

	// ListByHouseID returns the house's full proposal history, newest first.
	ListByHouseID(ctx context.Context, houseID string) ([]entities.RentProposal, error)

	// ListSubmitted returns every proposal currently awaiting decisions.
	ListSubmitted(ctx context.Context) ([]entities.RentProposal, error)

	// UpdateAllocations replaces the allocation set. Condition: status is
	// draft.
	UpdateAllocations(ctx context.Context, id string, allocs []entities.Allocation) (entities.RentProposal, error)

	// Delete removes the proposal. Condition: status is draft. Returns
	// (false, nil) when the condition fails.
	Delete(ctx context.Context, id string) (bool, error)

	// Submit transitions draft -> submitted, freezing the given allocation
	// set and stamping submittedAt. Condition: status is draft.
	Submit(ctx context.Context, id string, allocs []entities.Allocation, submittedAt time.Time) (entities.RentProposal, error)

	// RecordDecision writes one member's decision into the allocation at
	// index. Condition: status is submitted, the allocation at index still
	// belongs to alloc.UserID, and its approval status is pending.
	RecordDecision(ctx context.Context, id string, index int, alloc entities.Allocation) (entities.RentProposal, error)

	// Resolve transitions submitted -> approved|declined and stamps
	// resolvedAt. Condition: status is submitted.
	Resolve(ctx context.Context, id string, status entities.ProposalStatus, resolvedAt time.Time) (entities.RentProposal, error)
}
