package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"splitnest/internal/domain/entities"
	"splitnest/internal/usecase/interfaces"
)

var (
	ErrProposalNotOpen     = errors.New("proposal is not open for decisions")
	ErrNoAllocationForUser = errors.New("user has no allocation on this proposal")
	ErrAlreadyResponded    = errors.New("user already responded to this proposal")
)

// PendingApproval is one allocation awaiting the caller's decision.
type PendingApproval struct {
	ProposalID  string
	HouseID     string
	HouseName   string
	Amount      decimal.Decimal
	SubmittedAt *time.Time
}

// IApprovalUseCase records member decisions and derives the proposal's
// aggregate status.
//
// Consensus is unanimous with fast-fail: a single decline resolves the
// proposal to declined immediately (remaining pending allocations are no
// longer actionable), and the house's request reverts to pending so a new
// proposal can be drafted. All approvals resolve the proposal to approved
// and the request to fulfilled. Each member votes exactly once; a second
// decision from the same member is rejected, atomically, by a conditional
// write on that member's allocation.

type IApprovalUseCase interface {
	Approve(ctx context.Context, proposalID, userID string) (entities.RentProposal, error)
	Decline(ctx context.Context, proposalID, userID, reason string) (entities.RentProposal, error)
	GetForApprover(ctx context.Context, proposalID, userID string) (entities.RentProposal, entities.Allocation, error)
	ListPendingForUser(ctx context.Context, userID string) ([]PendingApproval, error)
}

type ApprovalUseCase struct {
	proposalRepo interfaces.IRentProposalRepository
	requestRepo  interfaces.IRentRequestRepository
	houseRepo    interfaces.IHouseRepository
}

var _ IApprovalUseCase = (*ApprovalUseCase)(nil)

func NewApprovalUseCase(proposalRepo interfaces.IRentProposalRepository, requestRepo interfaces.IRentRequestRepository, houseRepo interfaces.IHouseRepository) *ApprovalUseCase {
	return &ApprovalUseCase{proposalRepo: proposalRepo, requestRepo: requestRepo, houseRepo: houseRepo}
}

func (u *ApprovalUseCase) Approve(ctx context.Context, proposalID, userID string) (entities.RentProposal, error) {
	return u.record(ctx, proposalID, userID, entities.ApprovalStatusApproved, "")
}

func (u *ApprovalUseCase) Decline(ctx context.Context, proposalID, userID, reason string) (entities.RentProposal, error) {
	return u.record(ctx, proposalID, userID, entities.ApprovalStatusDeclined, strings.TrimSpace(reason))
}

func (u *ApprovalUseCase) record(ctx context.Context, proposalID, userID string, decision entities.ApprovalStatus, reason string) (entities.RentProposal, error) {
	proposalID = strings.TrimSpace(proposalID)
	userID = strings.TrimSpace(userID)
	if proposalID == "" {
		return entities.RentProposal{}, ErrInvalidProposalID
	}
	if userID == "" {
		return entities.RentProposal{}, ErrInvalidUserID
	}

	p, err := u.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return entities.RentProposal{}, err
	}
	if p.ID == "" {
		return entities.RentProposal{}, ErrProposalNotFound
	}
	if p.Status != entities.ProposalStatusSubmitted {
		return entities.RentProposal{}, ErrProposalNotOpen
	}

	idx := p.AllocationIndex(userID)
	if idx < 0 {
		return entities.RentProposal{}, ErrNoAllocationForUser
	}
	if p.Allocations[idx].ApprovalStatus != entities.ApprovalStatusPending {
		return entities.RentProposal{}, ErrAlreadyResponded
	}

	now := time.Now().UTC()
	decided := p.Allocations[idx]
	decided.ApprovalStatus = decision
	decided.DeclineReason = reason
	decided.RespondedAt = &now

	updated, err := u.proposalRepo.RecordDecision(ctx, p.ID, idx, decided)
	if err != nil {
		return entities.RentProposal{}, err
	}
	if updated.ID == "" {
		// Lost a race: either a duplicate vote from another device or the
		// proposal resolved between the read and the write.
		return entities.RentProposal{}, ErrAlreadyResponded
	}

	slog.Info("approval decision recorded",
		"proposal_id", p.ID,
		"user_id", userID,
		"decision", string(decision),
	)
	return u.recomputeAggregate(ctx, updated)
}

// recomputeAggregate derives the proposal status from the post-write
// snapshot of all allocations and, on resolution, settles the house's
// request. Not incremental counters: re-derived each vote so the
// any-decline-short-circuits rule stays easy to verify.
func (u *ApprovalUseCase) recomputeAggregate(ctx context.Context, p entities.RentProposal) (entities.RentProposal, error) {
	anyDeclined := false
	allApproved := true
	for _, a := range p.Allocations {
		switch a.ApprovalStatus {
		case entities.ApprovalStatusDeclined:
			anyDeclined = true
			allApproved = false
		case entities.ApprovalStatusPending:
			allApproved = false
		}
	}

	var (
		outcome entities.ProposalStatus
		next    entities.RequestStatus
	)
	switch {
	case anyDeclined:
		outcome = entities.ProposalStatusDeclined
		next = entities.RequestStatusPending
	case allApproved:
		outcome = entities.ProposalStatusApproved
		next = entities.RequestStatusFulfilled
	default:
		return p, nil
	}

	resolved, err := u.proposalRepo.Resolve(ctx, p.ID, outcome, time.Now().UTC())
	if err != nil {
		return entities.RentProposal{}, err
	}
	if resolved.ID == "" {
		// Another vote resolved it first; return the settled state.
		latest, err := u.proposalRepo.GetByID(ctx, p.ID)
		if err != nil {
			return entities.RentProposal{}, err
		}
		return latest, nil
	}

	if settled, err := u.requestRepo.ClearActiveProposal(ctx, p.HouseID, p.ID, next); err != nil {
		return entities.RentProposal{}, err
	} else if settled.ID == "" {
		slog.Warn("request settle skipped, active proposal mismatch", "house_id", p.HouseID, "proposal_id", p.ID)
	}

	slog.Info("proposal resolved",
		"house_id", p.HouseID,
		"proposal_id", p.ID,
		"status", string(outcome),
	)
	return resolved, nil
}

func (u *ApprovalUseCase) GetForApprover(ctx context.Context, proposalID, userID string) (entities.RentProposal, entities.Allocation, error) {
	proposalID = strings.TrimSpace(proposalID)
	userID = strings.TrimSpace(userID)
	if proposalID == "" {
		return entities.RentProposal{}, entities.Allocation{}, ErrInvalidProposalID
	}
	if userID == "" {
		return entities.RentProposal{}, entities.Allocation{}, ErrInvalidUserID
	}

	p, err := u.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return entities.RentProposal{}, entities.Allocation{}, err
	}
	if p.ID == "" {
		return entities.RentProposal{}, entities.Allocation{}, ErrProposalNotFound
	}

	idx := p.AllocationIndex(userID)
	if idx < 0 {
		return entities.RentProposal{}, entities.Allocation{}, ErrNoAllocationForUser
	}
	return p, p.Allocations[idx], nil
}

func (u *ApprovalUseCase) ListPendingForUser(ctx context.Context, userID string) ([]PendingApproval, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	submitted, err := u.proposalRepo.ListSubmitted(ctx)
	if err != nil {
		return nil, err
	}

	pending := make([]PendingApproval, 0)
	houseNames := make(map[string]string)
	for _, p := range submitted {
		idx := p.AllocationIndex(userID)
		if idx < 0 || p.Allocations[idx].ApprovalStatus != entities.ApprovalStatusPending {
			continue
		}

		name, ok := houseNames[p.HouseID]
		if !ok {
			house, err := u.houseRepo.GetByID(ctx, p.HouseID)
			if err != nil {
				return nil, err
			}
			name = house.Name
			houseNames[p.HouseID] = name
		}

		pending = append(pending, PendingApproval{
			ProposalID:  p.ID,
			HouseID:     p.HouseID,
			HouseName:   name,
			Amount:      p.Allocations[idx].Amount,
			SubmittedAt: p.SubmittedAt,
		})
	}
	return pending, nil
}
