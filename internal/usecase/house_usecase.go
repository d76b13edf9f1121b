package usecase

import (
	"context"
	"errors"
	"strings"

	"splitnest/internal/domain/entities"
	"splitnest/internal/usecase/interfaces"
)

var (
	ErrInvalidHouseID = errors.New("invalid house id")
	ErrInvalidUserID  = errors.New("invalid user id")
	ErrHouseNotFound  = errors.New("house not found")
	ErrNotHouseMember = errors.New("user is not a member of the house")
)

// IHouseUseCase exposes the read-only house directory backing the workflow.

type IHouseUseCase interface {
	GetByID(ctx context.Context, id string) (entities.House, error)
	ListMine(ctx context.Context, userID string) ([]entities.House, error)
}

type HouseUseCase struct {
	repo interfaces.IHouseRepository
}

var _ IHouseUseCase = (*HouseUseCase)(nil)

func NewHouseUseCase(repo interfaces.IHouseRepository) *HouseUseCase {
	return &HouseUseCase{repo: repo}
}

func (u *HouseUseCase) GetByID(ctx context.Context, id string) (entities.House, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.House{}, ErrInvalidHouseID
	}

	h, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.House{}, err
	}
	if h.ID == "" {
		return entities.House{}, ErrHouseNotFound
	}
	return h, nil
}

func (u *HouseUseCase) ListMine(ctx context.Context, userID string) ([]entities.House, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByMemberID(ctx, userID)
}
