package service

import (
	"context"
	"strings"

	"github.com/locacare/backend/internal/apperrors"
	"github.com/locacare/backend/internal/models"
	"github.com/locacare/backend/internal/repository"
)

type PlanService interface {
	CreatePlan(ctx context.Context, plan *models.Plan) error
	GetPlan(ctx context.Context, id int64) (*models.Plan, error)
	ListPlans(ctx context.Context, activeOnly bool) ([]models.Plan, error)
	UpdatePlan(ctx context.Context, plan *models.Plan) error
}

type planService struct {
	repo repository.PlanRepository
}

func NewPlanService(repo repository.PlanRepository) PlanService {
	return &planService{repo: repo}
}

func validatePlan(plan *models.Plan) error {
	plan.Name = strings.TrimSpace(plan.Name)
	if len(plan.Name) < 2 || plan.DurationDays <= 0 || plan.BasePrice < 0 {
		return apperrors.ErrInvalidRequest
	}
	return nil
}

func (s *planService) CreatePlan(ctx context.Context, plan *models.Plan) error {
	if err := validatePlan(plan); err != nil {
		return err
	}
	return s.repo.CreatePlan(ctx, plan)
}

func (s *planService) GetPlan(ctx context.Context, id int64) (*models.Plan, error) {
	return s.repo.GetPlanByID(ctx, id)
}

func (s *planService) ListPlans(ctx context.Context, activeOnly bool) ([]models.Plan, error) {
	return s.repo.ListPlans(ctx, activeOnly)
}

func (s *planService) UpdatePlan(ctx context.Context, plan *models.Plan) error {
	if err := validatePlan(plan); err != nil {
		return err
	}
	return s.repo.UpdatePlan(ctx, plan)
}
