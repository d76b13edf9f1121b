package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"splitnest/internal/domain/allocation"
	"splitnest/internal/domain/entities"
	"splitnest/internal/usecase/interfaces"
)

// ISubmissionUseCase is the one-way gate from draft to submitted.
//
// Submission runs the allocation validator as a hard precondition (sum within
// a cent of the rent total, allocation set equal to the house roster), then
// freezes the allocation set with every approval status reset to pending and
// stamps submittedAt. The creator's own allocation is not auto-approved; the
// consensus rule treats all members alike. The house's request stays claimed
// until the proposal resolves.

type ISubmissionUseCase interface {
	Submit(ctx context.Context, proposalID, userID string) (entities.RentProposal, error)
}

type SubmissionUseCase struct {
	proposalRepo interfaces.IRentProposalRepository
	requestRepo  interfaces.IRentRequestRepository
	houseRepo    interfaces.IHouseRepository
}

var _ ISubmissionUseCase = (*SubmissionUseCase)(nil)

func NewSubmissionUseCase(proposalRepo interfaces.IRentProposalRepository, requestRepo interfaces.IRentRequestRepository, houseRepo interfaces.IHouseRepository) *SubmissionUseCase {
	return &SubmissionUseCase{proposalRepo: proposalRepo, requestRepo: requestRepo, houseRepo: houseRepo}
}

func (u *SubmissionUseCase) Submit(ctx context.Context, proposalID, userID string) (entities.RentProposal, error) {
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
	if p.CreatedBy != userID {
		return entities.RentProposal{}, ErrNotProposalCreator
	}
	if p.Status != entities.ProposalStatusDraft {
		return entities.RentProposal{}, ErrProposalNotDraft
	}

	req, err := u.requestRepo.GetByHouseID(ctx, p.HouseID)
	if err != nil {
		return entities.RentProposal{}, err
	}
	if req.ID == "" {
		return entities.RentProposal{}, ErrRequestNotFound
	}

	house, err := u.houseRepo.GetByID(ctx, p.HouseID)
	if err != nil {
		return entities.RentProposal{}, err
	}
	if house.ID == "" {
		return entities.RentProposal{}, ErrHouseNotFound
	}

	// Hard gate: sum within a cent of the rent total and allocation set
	// equal to the roster current right now.
	res, err := allocation.Validate(p.Allocations, req.MonthlyRentAmount, house.MemberIDs)
	if err != nil {
		return entities.RentProposal{}, err
	}
	if !res.OK {
		return entities.RentProposal{}, &allocation.MismatchError{Difference: res.Difference}
	}

	frozen := make([]entities.Allocation, len(p.Allocations))
	for i, a := range p.Allocations {
		frozen[i] = entities.Allocation{
			UserID:         a.UserID,
			Amount:         a.Amount,
			ApprovalStatus: entities.ApprovalStatusPending,
		}
	}

	submitted, err := u.proposalRepo.Submit(ctx, p.ID, frozen, time.Now().UTC())
	if err != nil {
		return entities.RentProposal{}, err
	}
	if submitted.ID == "" {
		// Already submitted or deleted since the read.
		return entities.RentProposal{}, ErrProposalNotDraft
	}

	slog.Info("proposal submitted",
		"house_id", p.HouseID,
		"proposal_id", p.ID,
		"members", len(frozen),
		"rent_total", req.MonthlyRentAmount.StringFixed(2),
	)
	return submitted, nil
}
