package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"splitnest/internal/domain/entities"
	mock_interfaces "splitnest/internal/usecase/interfaces/mocks"
)

func TestClaimUseCase_Claim(t *testing.T) {
	house := entities.House{ID: "house-1", Name: "Elm St", MemberIDs: []string{"alice", "bob", "carol"}}

	t.Run("invalid house id", func(t *testing.T) {
		uc := NewClaimUseCase(nil, nil)
		_, err := uc.Claim(context.Background(), "   ", "alice")
		if !errors.Is(err, ErrInvalidHouseID) {
			t.Fatalf("expected ErrInvalidHouseID, got %v", err)
		}
	})

	t.Run("invalid user id", func(t *testing.T) {
		uc := NewClaimUseCase(nil, nil)
		_, err := uc.Claim(context.Background(), "house-1", "")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("house not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		houseRepo := mock_interfaces.NewMockIHouseRepository(ctrl)
		uc := NewClaimUseCase(nil, houseRepo)

		houseRepo.EXPECT().GetByID(gomock.Any(), "house-1").Return(entities.House{}, nil)

		_, err := uc.Claim(context.Background(), "house-1", "alice")
		if !errors.Is(err, ErrHouseNotFound) {
			t.Fatalf("expected ErrHouseNotFound, got %v", err)
		}
	})

	t.Run("not a member", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		houseRepo := mock_interfaces.NewMockIHouseRepository(ctrl)
		uc := NewClaimUseCase(nil, houseRepo)

		houseRepo.EXPECT().GetByID(gomock.Any(), "house-1").Return(house, nil)

		_, err := uc.Claim(context.Background(), "house-1", "mallory")
		if !errors.Is(err, ErrNotHouseMember) {
			t.Fatalf("expected ErrNotHouseMember, got %v", err)
		}
	})

	t.Run("no request for house", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		houseRepo := mock_interfaces.NewMockIHouseRepository(ctrl)
		requestRepo := mock_interfaces.NewMockIRentRequestRepository(ctrl)
		uc := NewClaimUseCase(requestRepo, houseRepo)

		houseRepo.EXPECT().GetByID(gomock.Any(), "house-1").Return(house, nil)
		requestRepo.EXPECT().GetByHouseID(gomock.Any(), "house-1").Return(entities.RentAllocationRequest{}, nil)

		_, err := uc.Claim(context.Background(), "house-1", "alice")
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("request already claimed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		houseRepo := mock_interfaces.NewMockIHouseRepository(ctrl)
		requestRepo := mock_interfaces.NewMockIRentRequestRepository(ctrl)
		uc := NewClaimUseCase(requestRepo, houseRepo)

		houseRepo.EXPECT().GetByID(gomock.Any(), "house-1").Return(house, nil)
		requestRepo.EXPECT().GetByHouseID(gomock.Any(), "house-1").Return(entities.RentAllocationRequest{
			ID: "req-1", HouseID: "house-1", Status: entities.RequestStatusClaimed, ClaimedBy: "bob",
		}, nil)

		_, err := uc.Claim(context.Background(), "house-1", "alice")
		if !errors.Is(err, ErrClaimConflict) {
			t.Fatalf("expected ErrClaimConflict, got %v", err)
		}
	})

	t.Run("lost the conditional write race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		houseRepo := mock_interfaces.NewMockIHouseRepository(ctrl)
		requestRepo := mock_interfaces.NewMockIRentRequestRepository(ctrl)
		uc := NewClaimUseCase(requestRepo, houseRepo)

		houseRepo.EXPECT().GetByID(gomock.Any(), "house-1").Return(house, nil)
		requestRepo.EXPECT().GetByHouseID(gomock.Any(), "house-1").Return(entities.RentAllocationRequest{
			ID: "req-1", HouseID: "house-1", Status: entities.RequestStatusPending,
		}, nil)
		requestRepo.EXPECT().Claim(gomock.Any(), "house-1", "alice").Return(entities.RentAllocationRequest{}, nil)

		_, err := uc.Claim(context.Background(), "house-1", "alice")
		if !errors.Is(err, ErrClaimConflict) {
			t.Fatalf("expected ErrClaimConflict, got %v", err)
		}
	})

	t.Run("claim success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		houseRepo := mock_interfaces.NewMockIHouseRepository(ctrl)
		requestRepo := mock_interfaces.NewMockIRentRequestRepository(ctrl)
		uc := NewClaimUseCase(requestRepo, houseRepo)

		houseRepo.EXPECT().GetByID(gomock.Any(), "house-1").Return(house, nil)
		requestRepo.EXPECT().GetByHouseID(gomock.Any(), "house-1").Return(entities.RentAllocationRequest{
			ID: "req-1", HouseID: "house-1", Status: entities.RequestStatusPending,
		}, nil)
		requestRepo.EXPECT().Claim(gomock.Any(), "house-1", "alice").Return(entities.RentAllocationRequest{
			ID: "req-1", HouseID: "house-1", Status: entities.RequestStatusClaimed, ClaimedBy: "alice",
		}, nil)

		claimed, err := uc.Claim(context.Background(), " house-1 ", " alice ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claimed.Status != entities.RequestStatusClaimed || claimed.ClaimedBy != "alice" {
			t.Fatalf("unexpected claim result: %+v", claimed)
		}
	})

	t.Run("repo error bubbles up", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		houseRepo := mock_interfaces.NewMockIHouseRepository(ctrl)
		uc := NewClaimUseCase(nil, houseRepo)

		houseRepo.EXPECT().GetByID(gomock.Any(), "house-1").Return(entities.House{}, errors.New("db"))

		_, err := uc.Claim(context.Background(), "house-1", "alice")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
