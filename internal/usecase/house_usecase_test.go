package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"splitnest/internal/domain/entities"
	mock_interfaces "splitnest/internal/usecase/interfaces/mocks"
)

func TestHouseUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewHouseUseCase(nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidHouseID) {
			t.Fatalf("expected ErrInvalidHouseID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIHouseRepository(ctrl)
		uc := NewHouseUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "house-1").Return(entities.House{}, nil)

		_, err := uc.GetByID(context.Background(), "house-1")
		if !errors.Is(err, ErrHouseNotFound) {
			t.Fatalf("expected ErrHouseNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIHouseRepository(ctrl)
		uc := NewHouseUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "house-1").Return(entities.House{
			ID: "house-1", Name: "Elm St", MemberIDs: []string{"alice", "bob"},
		}, nil)

		h, err := uc.GetByID(context.Background(), " house-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if h.Name != "Elm St" || len(h.MemberIDs) != 2 {
			t.Fatalf("unexpected house: %+v", h)
		}
	})
}

func TestHouseUseCase_ListMine(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		uc := NewHouseUseCase(nil)
		_, err := uc.ListMine(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("lists membership", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIHouseRepository(ctrl)
		uc := NewHouseUseCase(repo)

		repo.EXPECT().ListByMemberID(gomock.Any(), "alice").Return([]entities.House{
			{ID: "house-1", Name: "Elm St"}, {ID: "house-2", Name: "Oak Ave"},
		}, nil)

		houses, err := uc.ListMine(context.Background(), " alice ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(houses) != 2 {
			t.Fatalf("expected 2 houses, got %d", len(houses))
		}
	})
}
