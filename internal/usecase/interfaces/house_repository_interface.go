package interfaces

import (
	"context"

	"splitnest/internal/domain/entities"
)

// IHouseRepository abstracts DynamoDB persistence for House.
//
// The workflow only reads houses: the roster backs the membership check at
// submission and the pending-approvals listing.

type IHouseRepository interface {
	GetByID(ctx context.Context, id string) (entities.House, error)
	ListByMemberID(ctx context.Context, userID string) ([]entities.House, error)
}
