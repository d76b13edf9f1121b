package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"splitnest/internal/domain/entities"
	"splitnest/internal/usecase/interfaces"
)

var (
	ErrInvalidRentAmount = errors.New("monthly rent amount must be positive")
	ErrInvalidRentDueDay = errors.New("rent due day must be between 1 and 31")
	ErrRequestInProgress = errors.New("an allocation request is already in progress")
	ErrRequestNotFound   = errors.New("rent allocation request not found")
)

// IRentConfigUseCase covers the landlord-side step that opens the workflow:
// declaring (or re-declaring) the monthly rent, which creates a fresh pending
// RentAllocationRequest for the house.
//
// A new configuration is rejected while a non-terminal request exists; the
// configuration in use by an open request is immutable.

type IRentConfigUseCase interface {
	SetConfiguration(ctx context.Context, houseID string, monthlyRent decimal.Decimal, dueDay int) (entities.RentAllocationRequest, error)
	GetRequestByHouseID(ctx context.Context, houseID string) (entities.RentAllocationRequest, error)
}

type RentConfigUseCase struct {
	requestRepo interfaces.IRentRequestRepository
	houseRepo   interfaces.IHouseRepository
}

var _ IRentConfigUseCase = (*RentConfigUseCase)(nil)

func NewRentConfigUseCase(requestRepo interfaces.IRentRequestRepository, houseRepo interfaces.IHouseRepository) *RentConfigUseCase {
	return &RentConfigUseCase{requestRepo: requestRepo, houseRepo: houseRepo}
}

func (u *RentConfigUseCase) SetConfiguration(ctx context.Context, houseID string, monthlyRent decimal.Decimal, dueDay int) (entities.RentAllocationRequest, error) {
	houseID = strings.TrimSpace(houseID)
	if houseID == "" {
		return entities.RentAllocationRequest{}, ErrInvalidHouseID
	}
	if !monthlyRent.IsPositive() {
		return entities.RentAllocationRequest{}, ErrInvalidRentAmount
	}
	if dueDay < 1 || dueDay > 31 {
		return entities.RentAllocationRequest{}, ErrInvalidRentDueDay
	}

	house, err := u.houseRepo.GetByID(ctx, houseID)
	if err != nil {
		return entities.RentAllocationRequest{}, err
	}
	if house.ID == "" {
		return entities.RentAllocationRequest{}, ErrHouseNotFound
	}

	now := time.Now().UTC()
	req := entities.RentAllocationRequest{
		ID:                  uuid.NewString(),
		HouseID:             houseID,
		RentConfigurationID: uuid.NewString(),
		MonthlyRentAmount:   monthlyRent.Round(2),
		RentDueDay:          dueDay,
		Status:              entities.RequestStatusPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	created, err := u.requestRepo.PutPending(ctx, req)
	if err != nil {
		return entities.RentAllocationRequest{}, err
	}
	if created.ID == "" {
		// Condition failed: a pending or claimed request already exists.
		return entities.RentAllocationRequest{}, ErrRequestInProgress
	}
	return created, nil
}

func (u *RentConfigUseCase) GetRequestByHouseID(ctx context.Context, houseID string) (entities.RentAllocationRequest, error) {
	houseID = strings.TrimSpace(houseID)
	if houseID == "" {
		return entities.RentAllocationRequest{}, ErrInvalidHouseID
	}

	req, err := u.requestRepo.GetByHouseID(ctx, houseID)
	if err != nil {
		return entities.RentAllocationRequest{}, err
	}
	if req.ID == "" {
		return entities.RentAllocationRequest{}, ErrRequestNotFound
	}
	return req, nil
}
