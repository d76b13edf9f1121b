package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequestStatus represents the lifecycle of a rent allocation request.
//
// Domain notes:
//   - A request is the pending task "someone must propose how to split this
//     month's rent". It is opened when the landlord sets or changes the rent.
//   - pending/claimed are the non-terminal states; at most one non-terminal
//     request may exist per house at a time.

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusClaimed   RequestStatus = "claimed"
	RequestStatusFulfilled RequestStatus = "fulfilled"
	RequestStatusExpired   RequestStatus = "expired"
)

// RentAllocationRequest is persisted one-per-house in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: house_id
//
// Using the house id as PK guarantees the "one non-terminal request per
// house" invariant structurally; every guarded transition (claim, active
// proposal slot, resolution) is a conditional update on this single item.
//
// Monetary representation:
//   - MonthlyRentAmount is the landlord-declared rent total the accepted
//     allocation set must sum to. Stored as a decimal string attribute.
type RentAllocationRequest struct {
	ID                  string          `json:"id"`
	HouseID             string          `json:"house_id"`
	RentConfigurationID string          `json:"rent_configuration_id"`
	MonthlyRentAmount   decimal.Decimal `json:"monthly_rent_amount"`
	RentDueDay          int             `json:"rent_due_day"`
	Status              RequestStatus   `json:"status"`
	ClaimedBy           string          `json:"claimed_by,omitempty"`
	ClaimedAt           *time.Time      `json:"claimed_at,omitempty"`
	ActiveProposalID    string          `json:"active_proposal_id,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// IsTerminal reports whether the request has left the workflow.
func (r RentAllocationRequest) IsTerminal() bool {
	return r.Status == RequestStatusFulfilled || r.Status == RequestStatusExpired
}
