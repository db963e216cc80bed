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

type WithdrawalRepository interface {
	GetWithdrawalByPublicID(ctx context.Context, publicID string) (*models.Withdrawal, error)
	ListWithdrawalsByUser(ctx context.Context, userID int64) ([]models.Withdrawal, error)
	ListWithdrawals(ctx context.Context, status *models.WithdrawalStatus) ([]models.Withdrawal, error)
	DecideWithdrawal(ctx context.Context, publicID string, decision models.WithdrawalStatus, note *string) (*models.Withdrawal, error)
}

type withdrawalRepo struct {
	db *sql.DB
}

func NewWithdrawalRepository(db *sql.DB) WithdrawalRepository {
	return &withdrawalRepo{db: db}
}

const withdrawalColumns = `id, public_id, user_id, amount, pix_key, status, note, created_at, decided_at`

func (r *withdrawalRepo) GetWithdrawalByPublicID(ctx context.Context, publicID string) (*models.Withdrawal, error) {
	var w models.Withdrawal
	err := r.db.QueryRowContext(ctx, `
		SELECT `+withdrawalColumns+` FROM withdrawals WHERE public_id=$1
	`, publicID).Scan(&w.ID, &w.PublicID, &w.UserID, &w.Amount, &w.PixKey, &w.Status, &w.Note, &w.CreatedAt, &w.DecidedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrWithdrawalNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *withdrawalRepo) ListWithdrawalsByUser(ctx context.Context, userID int64) ([]models.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		logger.Log.Error("failed to query withdrawals", zap.Error(err))
		return nil, err
	}
	defer closeRows(rows)
	return scanWithdrawals(rows)
}

func (r *withdrawalRepo) ListWithdrawals(ctx context.Context, status *models.WithdrawalStatus) ([]models.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals`
	args := []any{}
	if status != nil {
		query += ` WHERE status=$1`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.Error("failed to query withdrawals", zap.Error(err))
		return nil, err
	}
	defer closeRows(rows)
	return scanWithdrawals(rows)
}

func scanWithdrawals(rows *sql.Rows) ([]models.Withdrawal, error) {
	var withdrawals []models.Withdrawal
	for rows.Next() {
		var w models.Withdrawal
		if err := rows.Scan(&w.ID, &w.PublicID, &w.UserID, &w.Amount, &w.PixKey, &w.Status, &w.Note, &w.CreatedAt, &w.DecidedAt); err != nil {
			return nil, err
		}
		withdrawals = append(withdrawals, w)
	}
	return withdrawals, rows.Err()
}

// DecideWithdrawal settles a pending request. The status predicate in the
// update makes the decision a compare-and-set: a second decision matches zero
// rows and surfaces as a conflict, leaving the first decision intact.
func (r *withdrawalRepo) DecideWithdrawal(ctx context.Context, publicID string, decision models.WithdrawalStatus, note *string) (*models.Withdrawal, error) {
	var w models.Withdrawal
	err := r.db.QueryRowContext(ctx, `
		UPDATE withdrawals
		SET status=$1, note=$2, decided_at=now()
		WHERE public_id=$3 AND status=$4
		RETURNING `+withdrawalColumns+`
	`, decision, note, publicID, models.WithdrawalPending,
	).Scan(&w.ID, &w.PublicID, &w.UserID, &w.Amount, &w.PixKey, &w.Status, &w.Note, &w.CreatedAt, &w.DecidedAt)

	if errors.Is(err, sql.ErrNoRows) {
		if _, getErr := r.GetWithdrawalByPublicID(ctx, publicID); getErr != nil {
			return nil, getErr
		}
		return nil, apperrors.ErrAlreadyDecided
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}
