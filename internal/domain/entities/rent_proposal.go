package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProposalStatus represents the lifecycle of a rent proposal.
//
// State machine:
//   - draft -> submitted (one-way, freezes allocations)
//   - submitted -> approved | declined (derived from member decisions)
//
// approved/declined are terminal.

type ProposalStatus string

const (
	ProposalStatusDraft     ProposalStatus = "draft"
	ProposalStatusSubmitted ProposalStatus = "submitted"
	ProposalStatusApproved  ProposalStatus = "approved"
	ProposalStatusDeclined  ProposalStatus = "declined"
)

// ApprovalStatus is a single member's decision on their own allocation.

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusDeclined ApprovalStatus = "declined"
)

// Allocation is one member's dollar share of the rent plus their decision.
type Allocation struct {
	UserID         string          `json:"user_id"`
	Amount         decimal.Decimal `json:"amount"`
	ApprovalStatus ApprovalStatus  `json:"approval_status"`
	DeclineReason  string          `json:"decline_reason,omitempty"`
	RespondedAt    *time.Time      `json:"responded_at,omitempty"`
}

// RentProposal is persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (house_id-index): house_id
//   - GSI2 (status-index): status
type RentProposal struct {
	ID                  string         `json:"id"`
	HouseID             string         `json:"house_id"`
	RentConfigurationID string         `json:"rent_configuration_id"`
	CreatedBy           string         `json:"created_by"`
	Status              ProposalStatus `json:"status"`
	Allocations         []Allocation   `json:"allocations"`
	CreatedAt           time.Time      `json:"created_at"`
	SubmittedAt         *time.Time     `json:"submitted_at,omitempty"`
	ResolvedAt          *time.Time     `json:"resolved_at,omitempty"`
}

// IsActive reports whether the proposal occupies the house's single
// active-proposal slot.
func (p RentProposal) IsActive() bool {
	return p.Status == ProposalStatusDraft || p.Status == ProposalStatusSubmitted
}

// IsTerminal reports whether the proposal has resolved.
func (p RentProposal) IsTerminal() bool {
	return p.Status == ProposalStatusApproved || p.Status == ProposalStatusDeclined
}

// AllocationIndex returns the position of userID's allocation, or -1.
func (p RentProposal) AllocationIndex(userID string) int {
	for i, a := range p.Allocations {
		if a.UserID == userID {
			return i
		}
	}
	return -1
}
