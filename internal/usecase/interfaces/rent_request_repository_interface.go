package interfaces

import (
	"context"

	"splitnest/internal/domain/entities"
)

// IRentRequestRepository abstracts DynamoDB persistence for
// RentAllocationRequest.
//
// Every state transition is a single conditional write on the house's one
// request item. Methods return the zero-value entity (no error) when the
// condition fails, so callers can map a lost race to a conflict without
// depending on driver error types.

type IRentRequestRepository interface {
	// GetByHouseID returns the house's request, or the zero value when the
	// house has none.
	GetByHouseID(ctx context.Context, houseID string) (entities.RentAllocationRequest, error)

	// PutPending writes a fresh pending request. Condition: the house has no
	// request item, or its request is terminal (fulfilled/expired).
	PutPending(ctx context.Context, req entities.RentAllocationRequest) (entities.RentAllocationRequest, error)

	// Claim transitions pending -> claimed for userID. Condition: status is
	// pending. Exactly one concurrent caller wins.
	Claim(ctx context.Context, houseID, userID string) (entities.RentAllocationRequest, error)

	// SetActiveProposal records proposalID as the house's single active
	// proposal. Condition: status is claimed and no active proposal is set.
	SetActiveProposal(ctx context.Context, houseID, proposalID string) (entities.RentAllocationRequest, error)

	// ClearActiveProposal releases the active-proposal slot and moves the
	// request to next (pending when the proposal was deleted or declined,
	// fulfilled when it was approved). Condition: the recorded active
	// proposal is proposalID. Reverting to pending also clears the claim.
	ClearActiveProposal(ctx context.Context, houseID, proposalID string, next entities.RequestStatus) (entities.RentAllocationRequest, error)
}
