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

type ChairRepository interface {
	CreateChair(ctx context.Context, chair *models.Chair) error
	GetChairByID(ctx context.Context, id int64) (*models.Chair, error)
	ListChairs(ctx context.Context) ([]models.Chair, error)
	UpdateChair(ctx context.Context, chair *models.Chair) error
}

type chairRepo struct {
	db *sql.DB
}

func NewChairRepository(db *sql.DB) ChairRepository {
	return &chairRepo{db: db}
}

const chairColumns = `id, name, internal_code, color, material, status, description, created_at`

func (r *chairRepo) CreateChair(ctx context.Context, chair *models.Chair) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO chairs (name, internal_code, color, material, status, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, chair.Name, chair.InternalCode, chair.Color, chair.Material, chair.Status, chair.Description,
	).Scan(&chair.ID, &chair.CreatedAt)
}

func (r *chairRepo) GetChairByID(ctx context.Context, id int64) (*models.Chair, error) {
	var chair models.Chair
	err := r.db.QueryRowContext(ctx, `
		SELECT `+chairColumns+` FROM chairs WHERE id=$1
	`, id).Scan(&chair.ID, &chair.Name, &chair.InternalCode, &chair.Color,
		&chair.Material, &chair.Status, &chair.Description, &chair.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrChairNotFound
	}
	if err != nil {
		return nil, err
	}
	return &chair, nil
}

func (r *chairRepo) ListChairs(ctx context.Context) ([]models.Chair, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+chairColumns+` FROM chairs ORDER BY name`)
	if err != nil {
		logger.Log.Error("failed to query chairs", zap.Error(err))
		return nil, err
	}
	defer closeRows(rows)

	var chairs []models.Chair
	for rows.Next() {
		var chair models.Chair
		if err := rows.Scan(&chair.ID, &chair.Name, &chair.InternalCode, &chair.Color,
			&chair.Material, &chair.Status, &chair.Description, &chair.CreatedAt); err != nil {
			return nil, err
		}
		chairs = append(chairs, chair)
	}
	return chairs, rows.Err()
}

func (r *chairRepo) UpdateChair(ctx context.Context, chair *models.Chair) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE chairs SET name=$1, internal_code=$2, color=$3, material=$4, status=$5, description=$6
		WHERE id=$7
	`, chair.Name, chair.InternalCode, chair.Color, chair.Material, chair.Status, chair.Description, chair.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrChairNotFound
	}
	return nil
}
