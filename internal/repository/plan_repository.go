package repository

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/locacare/backend/internal/apperrors"
	"github.com/locacare/backend/internal/logger"
	"github.com/locacare/backend/internal/models"
)

type PlanRepository interface {
	CreatePlan(ctx context.Context, plan *models.Plan) error
	GetPlanByID(ctx context.Context, id int64) (*models.Plan, error)
	ListPlans(ctx context.Context, activeOnly bool) ([]models.Plan, error)
	UpdatePlan(ctx context.Context, plan *models.Plan) error
}

type planRepo struct {
	db *sql.DB
}

func NewPlanRepository(db *sql.DB) PlanRepository {
	return &planRepo{db: db}
}

const planColumns = `id, name, duration_days, base_price, active, created_at`

func (r *planRepo) CreatePlan(ctx context.Context, plan *models.Plan) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO plans (name, duration_days, base_price, active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, plan.Name, plan.DurationDays, plan.BasePrice, plan.Active,
	).Scan(&plan.ID, &plan.CreatedAt)
}

func (r *planRepo) GetPlanByID(ctx context.Context, id int64) (*models.Plan, error) {
	var plan models.Plan
	err := r.db.QueryRowContext(ctx, `
		SELECT `+planColumns+` FROM plans WHERE id=$1
	`, id).Scan(&plan.ID, &plan.Name, &plan.DurationDays, &plan.BasePrice, &plan.Active, &plan.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepo) ListPlans(ctx context.Context, activeOnly bool) ([]models.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY base_price`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Log.Error("failed to query plans", zap.Error(err))
		return nil, err
	}
	defer closeRows(rows)

	var plans []models.Plan
	for rows.Next() {
		var plan models.Plan
		if err := rows.Scan(&plan.ID, &plan.Name, &plan.DurationDays, &plan.BasePrice, &plan.Active, &plan.CreatedAt); err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

func (r *planRepo) UpdatePlan(ctx context.Context, plan *models.Plan) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE plans SET name=$1, duration_days=$2, base_price=$3, active=$4 WHERE id=$5
	`, plan.Name, plan.DurationDays, plan.BasePrice, plan.Active, plan.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrPlanNotFound
	}
	return nil
}
