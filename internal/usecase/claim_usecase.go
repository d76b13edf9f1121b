package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"splitnest/internal/domain/entities"
	"splitnest/internal/usecase/interfaces"
)

var (
	ErrClaimConflict = errors.New("request already claimed")
)

// IClaimUseCase grants the exclusive drafting right for a pending rent
// allocation request.
//
// The claim is a single conditional write guarded by status == pending;
// under concurrent claims exactly one caller wins and every other caller
// gets ErrClaimConflict. There is no retry and no expiry: a claim only ends
// through proposal resolution or draft deletion.

type IClaimUseCase interface {
	Claim(ctx context.Context, houseID, userID string) (entities.RentAllocationRequest, error)
}

type ClaimUseCase struct {
	requestRepo interfaces.IRentRequestRepository
	houseRepo   interfaces.IHouseRepository
}

var _ IClaimUseCase = (*ClaimUseCase)(nil)

func NewClaimUseCase(requestRepo interfaces.IRentRequestRepository, houseRepo interfaces.IHouseRepository) *ClaimUseCase {
	return &ClaimUseCase{requestRepo: requestRepo, houseRepo: houseRepo}
}

func (u *ClaimUseCase) Claim(ctx context.Context, houseID, userID string) (entities.RentAllocationRequest, error) {
	houseID = strings.TrimSpace(houseID)
	userID = strings.TrimSpace(userID)
	if houseID == "" {
		return entities.RentAllocationRequest{}, ErrInvalidHouseID
	}
	if userID == "" {
		return entities.RentAllocationRequest{}, ErrInvalidUserID
	}

	house, err := u.houseRepo.GetByID(ctx, houseID)
	if err != nil {
		return entities.RentAllocationRequest{}, err
	}
	if house.ID == "" {
		return entities.RentAllocationRequest{}, ErrHouseNotFound
	}
	if !house.HasMember(userID) {
		return entities.RentAllocationRequest{}, ErrNotHouseMember
	}

	req, err := u.requestRepo.GetByHouseID(ctx, houseID)
	if err != nil {
		return entities.RentAllocationRequest{}, err
	}
	if req.ID == "" {
		return entities.RentAllocationRequest{}, ErrRequestNotFound
	}
	if req.Status != entities.RequestStatusPending {
		return entities.RentAllocationRequest{}, ErrClaimConflict
	}

	claimed, err := u.requestRepo.Claim(ctx, houseID, userID)
	if err != nil {
		return entities.RentAllocationRequest{}, err
	}
	if claimed.ID == "" {
		// Lost the race: someone else claimed between the read and the
		// conditional write.
		slog.Debug("claim conflict", "house_id", houseID, "user_id", userID)
		return entities.RentAllocationRequest{}, ErrClaimConflict
	}

	slog.Info("rent request claimed", "house_id", houseID, "user_id", userID, "request_id", claimed.ID)
	return claimed, nil
}
