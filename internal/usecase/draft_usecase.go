package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"splitnest/internal/domain/allocation"
	"splitnest/internal/domain/entities"
	"splitnest/internal/usecase/interfaces"
)

var (
	ErrInvalidProposalID    = errors.New("invalid proposal id")
	ErrProposalNotFound     = errors.New("proposal not found")
	ErrNotProposalCreator   = errors.New("only the proposal creator may do this")
	ErrProposalNotDraft     = errors.New("proposal is not a draft")
	ErrActiveProposalExists = errors.New("an active proposal already exists for this house")
	ErrRequestNotClaimed    = errors.New("request is not claimed by this user")
)

// DraftResult pairs a draft with the advisory live remainder (rent total
// minus allocated sum) so the client can show "left to allocate" without a
// second round trip. The remainder never blocks a draft write; the sum only
// becomes a hard gate at submission.
type DraftResult struct {
	Proposal  entities.RentProposal
	Remaining decimal.Decimal
}

// IDraftUseCase is CRUD over not-yet-submitted proposals.
//
// Rules:
//   - drafting requires holding the house's claim
//   - only the creator may edit or delete a draft
//   - one draft or submitted proposal per house (conditional write on the
//     request item's active-proposal slot)
//   - deleting the draft releases the slot and reverts the request to
//     pending so another member may claim it

type IDraftUseCase interface {
	CreateDraft(ctx context.Context, houseID, userID string, allocs []entities.Allocation) (DraftResult, error)
	UpdateDraft(ctx context.Context, proposalID, userID string, allocs []entities.Allocation) (DraftResult, error)
	DeleteDraft(ctx context.Context, proposalID, userID string) error
	GetByID(ctx context.Context, proposalID string) (entities.RentProposal, error)
	GetActiveByHouseID(ctx context.Context, houseID string) (entities.RentProposal, error)
	ListByHouseID(ctx context.Context, houseID string) ([]entities.RentProposal, error)
}

type DraftUseCase struct {
	proposalRepo interfaces.IRentProposalRepository
	requestRepo  interfaces.IRentRequestRepository
	houseRepo    interfaces.IHouseRepository
}

var _ IDraftUseCase = (*DraftUseCase)(nil)

func NewDraftUseCase(proposalRepo interfaces.IRentProposalRepository, requestRepo interfaces.IRentRequestRepository, houseRepo interfaces.IHouseRepository) *DraftUseCase {
	return &DraftUseCase{proposalRepo: proposalRepo, requestRepo: requestRepo, houseRepo: houseRepo}
}

func (u *DraftUseCase) CreateDraft(ctx context.Context, houseID, userID string, allocs []entities.Allocation) (DraftResult, error) {
	houseID = strings.TrimSpace(houseID)
	userID = strings.TrimSpace(userID)
	if houseID == "" {
		return DraftResult{}, ErrInvalidHouseID
	}
	if userID == "" {
		return DraftResult{}, ErrInvalidUserID
	}
	if err := allocation.CheckAmounts(allocs); err != nil {
		return DraftResult{}, err
	}

	house, err := u.houseRepo.GetByID(ctx, houseID)
	if err != nil {
		return DraftResult{}, err
	}
	if house.ID == "" {
		return DraftResult{}, ErrHouseNotFound
	}
	for _, a := range allocs {
		if !house.HasMember(a.UserID) {
			return DraftResult{}, allocation.ErrUnknownMembers
		}
	}

	req, err := u.requestRepo.GetByHouseID(ctx, houseID)
	if err != nil {
		return DraftResult{}, err
	}
	if req.ID == "" {
		return DraftResult{}, ErrRequestNotFound
	}
	if req.Status != entities.RequestStatusClaimed || req.ClaimedBy != userID {
		return DraftResult{}, ErrRequestNotClaimed
	}

	now := time.Now().UTC()
	p := entities.RentProposal{
		ID:                  uuid.NewString(),
		HouseID:             houseID,
		RentConfigurationID: req.RentConfigurationID,
		CreatedBy:           userID,
		Status:              entities.ProposalStatusDraft,
		Allocations:         normalizeDraftAllocations(allocs),
		CreatedAt:           now,
	}

	// Acquire the house's single active-proposal slot before writing the
	// proposal itself; a concurrent second draft loses here.
	if slot, err := u.requestRepo.SetActiveProposal(ctx, houseID, p.ID); err != nil {
		return DraftResult{}, err
	} else if slot.ID == "" {
		return DraftResult{}, ErrActiveProposalExists
	}

	created, err := u.proposalRepo.Create(ctx, p)
	if err != nil {
		// Release the slot: without this the request would keep pointing at
		// a proposal that was never written and the house could never draft
		// again. The request stays claimed so the caller can retry.
		if _, cerr := u.requestRepo.ClearActiveProposal(ctx, houseID, p.ID, entities.RequestStatusClaimed); cerr != nil {
			slog.Error("failed to release active proposal slot after create failure",
				"house_id", houseID, "proposal_id", p.ID, "error", cerr)
		}
		return DraftResult{}, err
	}

	slog.Info("draft proposal created", "house_id", houseID, "proposal_id", created.ID, "created_by", userID)
	return DraftResult{
		Proposal:  created,
		Remaining: allocation.Remaining(created.Allocations, req.MonthlyRentAmount),
	}, nil
}

func (u *DraftUseCase) UpdateDraft(ctx context.Context, proposalID, userID string, allocs []entities.Allocation) (DraftResult, error) {
	p, err := u.getOwnedDraft(ctx, proposalID, userID)
	if err != nil {
		return DraftResult{}, err
	}
	if err := allocation.CheckAmounts(allocs); err != nil {
		return DraftResult{}, err
	}

	house, err := u.houseRepo.GetByID(ctx, p.HouseID)
	if err != nil {
		return DraftResult{}, err
	}
	if house.ID == "" {
		return DraftResult{}, ErrHouseNotFound
	}
	for _, a := range allocs {
		if !house.HasMember(a.UserID) {
			return DraftResult{}, allocation.ErrUnknownMembers
		}
	}

	updated, err := u.proposalRepo.UpdateAllocations(ctx, p.ID, normalizeDraftAllocations(allocs))
	if err != nil {
		return DraftResult{}, err
	}
	if updated.ID == "" {
		// Submitted (or deleted) between the read and the write.
		return DraftResult{}, ErrProposalNotDraft
	}

	remaining := decimal.Zero
	if req, err := u.requestRepo.GetByHouseID(ctx, p.HouseID); err == nil && req.ID != "" {
		remaining = allocation.Remaining(updated.Allocations, req.MonthlyRentAmount)
	}
	return DraftResult{Proposal: updated, Remaining: remaining}, nil
}

func (u *DraftUseCase) DeleteDraft(ctx context.Context, proposalID, userID string) error {
	p, err := u.getOwnedDraft(ctx, proposalID, userID)
	if err != nil {
		return err
	}

	ok, err := u.proposalRepo.Delete(ctx, p.ID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProposalNotDraft
	}

	// Release the slot and hand the request back: the house's request
	// reverts to pending so another member may claim it.
	released, err := u.requestRepo.ClearActiveProposal(ctx, p.HouseID, p.ID, entities.RequestStatusPending)
	if err != nil {
		return err
	}
	if released.ID == "" {
		slog.Warn("active proposal slot did not match deleted draft", "house_id", p.HouseID, "proposal_id", p.ID)
	}

	slog.Info("draft proposal deleted", "house_id", p.HouseID, "proposal_id", p.ID, "deleted_by", userID)
	return nil
}

func (u *DraftUseCase) GetByID(ctx context.Context, proposalID string) (entities.RentProposal, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return entities.RentProposal{}, ErrInvalidProposalID
	}

	p, err := u.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return entities.RentProposal{}, err
	}
	if p.ID == "" {
		return entities.RentProposal{}, ErrProposalNotFound
	}
	return p, nil
}

func (u *DraftUseCase) GetActiveByHouseID(ctx context.Context, houseID string) (entities.RentProposal, error) {
	houseID = strings.TrimSpace(houseID)
	if houseID == "" {
		return entities.RentProposal{}, ErrInvalidHouseID
	}

	p, err := u.proposalRepo.GetActiveByHouseID(ctx, houseID)
	if err != nil {
		return entities.RentProposal{}, err
	}
	if p.ID == "" {
		return entities.RentProposal{}, ErrProposalNotFound
	}
	return p, nil
}

func (u *DraftUseCase) ListByHouseID(ctx context.Context, houseID string) ([]entities.RentProposal, error) {
	houseID = strings.TrimSpace(houseID)
	if houseID == "" {
		return nil, ErrInvalidHouseID
	}
	return u.proposalRepo.ListByHouseID(ctx, houseID)
}

func (u *DraftUseCase) getOwnedDraft(ctx context.Context, proposalID, userID string) (entities.RentProposal, error) {
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
	return p, nil
}

func normalizeDraftAllocations(allocs []entities.Allocation) []entities.Allocation {
	out := make([]entities.Allocation, len(allocs))
	for i, a := range allocs {
		out[i] = entities.Allocation{
			UserID:         strings.TrimSpace(a.UserID),
			Amount:         a.Amount.Round(2),
			ApprovalStatus: entities.ApprovalStatusPending,
		}
	}
	return out
}
