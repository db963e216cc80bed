package service

import (
	"context"
	"strings"

	"github.com/locacare/backend/internal/apperrors"
	"github.com/locacare/backend/internal/models"
	"github.com/locacare/backend/internal/repository"
)

type ChairService interface {
	CreateChair(ctx context.Context, chair *models.Chair) error
	GetChair(ctx context.Context, id int64) (*models.Chair, error)
	ListChairs(ctx context.Context) ([]models.Chair, error)
	UpdateChair(ctx context.Context, chair *models.Chair) error
}

type chairService struct {
	repo repository.ChairRepository
}

func NewChairService(repo repository.ChairRepository) ChairService {
	return &chairService{repo: repo}
}

func validateChair(chair *models.Chair) error {
	chair.Name = strings.TrimSpace(chair.Name)
	if len(chair.Name) < 2 {
		return apperrors.ErrInvalidRequest
	}
	if chair.Status == "" {
		chair.Status = models.ChairAvailable
	}
	if !chair.Status.Valid() {
		return apperrors.ErrInvalidRequest
	}
	return nil
}

func (s *chairService) CreateChair(ctx context.Context, chair *models.Chair) error {
	if err := validateChair(chair); err != nil {
		return err
	}
	return s.repo.CreateChair(ctx, chair)
}

func (s *chairService) GetChair(ctx context.Context, id int64) (*models.Chair, error) {
	return s.repo.GetChairByID(ctx, id)
}

func (s *chairService) ListChairs(ctx context.Context) ([]models.Chair, error) {
	return s.repo.ListChairs(ctx)
}

func (s *chairService) UpdateChair(ctx context.Context, chair *models.Chair) error {
	if err := validateChair(chair); err != nil {
		return err
	}
	return s.repo.UpdateChair(ctx, chair)
}
