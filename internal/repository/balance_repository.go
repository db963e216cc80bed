package repository

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/locacare/backend/internal/apperrors"
	"github.com/locacare/backend/internal/logger"
	"github.com/locacare/backend/internal/models"
	"github.com/locacare/backend/internal/utils"
)

type BalanceRepository interface {
	GetReconciledBalance(ctx context.Context, userID int64) (models.PartnerBalance, error)
	SubmitWithdrawal(ctx context.Context, withdrawal *models.Withdrawal) error
}

type balanceRepo struct {
	db *sql.DB
}

func NewBalanceRepository(db *sql.DB) BalanceRepository {
	return &balanceRepo{db: db}
}

const confirmedClassSQL = `('confirmed', 'out_for_delivery', 'in_use', 'awaiting_pickup', 'completed')`

const earnedQuery = `
	SELECT COALESCE(SUM(ROUND(total_value * $1 / 100.0, 2)), 0)
	FROM rentals
	WHERE referral_code = $2 AND status IN ` + confirmedClassSQL

const pendingQuery = `
	SELECT COALESCE(SUM(ROUND(total_value * $1 / 100.0, 2)), 0)
	FROM rentals
	WHERE referral_code = $2
	  AND status NOT IN ` + confirmedClassSQL + `
	  AND status <> 'cancelled'`

const withdrawnQuery = `
	SELECT COALESCE(SUM(amount), 0)
	FROM withdrawals
	WHERE user_id = $1 AND status <> 'rejected'`

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func reconcile(ctx context.Context, q querier, userID int64, code string, rate float64) (models.PartnerBalance, error) {
	var balance models.PartnerBalance

	if err := q.QueryRowContext(ctx, earnedQuery, rate, code).Scan(&balance.Earned); err != nil {
		return balance, err
	}
	if err := q.QueryRowContext(ctx, pendingQuery, rate, code).Scan(&balance.Pending); err != nil {
		return balance, err
	}
	if err := q.QueryRowContext(ctx, withdrawnQuery, userID).Scan(&balance.Withdrawn); err != nil {
		return balance, err
	}

	balance.Available = utils.Round2(balance.Earned - balance.Withdrawn)
	if balance.Available < 0 {
		balance.Available = 0
	}
	return balance, nil
}

// GetReconciledBalance recomputes the partner's figures from rentals and
// withdrawals. The stored referral_balance is returned alongside as Posted;
// the two legitimately diverge once a rental is cancelled after posting, and
// the divergence is logged rather than hidden.
func (r *balanceRepo) GetReconciledBalance(ctx context.Context, userID int64) (models.PartnerBalance, error) {
	var (
		code   sql.NullString
		rate   float64
		posted float64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT referral_code, commission_rate, referral_balance FROM users WHERE id = $1
	`, userID).Scan(&code, &rate, &posted)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PartnerBalance{}, apperrors.ErrUserNotFound
	}
	if err != nil {
		return models.PartnerBalance{}, err
	}
	if !code.Valid {
		return models.PartnerBalance{}, apperrors.ErrNotAPartner
	}

	balance, err := reconcile(ctx, r.db, userID, code.String, rate)
	if err != nil {
		logger.Log.Error("failed to reconcile balance", zap.Int64("user", userID), zap.Error(err))
		return models.PartnerBalance{}, err
	}
	balance.Posted = posted

	if balance.Posted != balance.Earned {
		logger.Log.Warn("stored balance diverges from reconciled earnings",
			zap.Int64("user", userID),
			zap.Float64("posted", balance.Posted),
			zap.Float64("earned", balance.Earned))
	}
	return balance, nil
}

// SubmitWithdrawal inserts a pending request, re-checking the available
// balance inside the same transaction with the partner row locked. Two rapid
// submissions therefore serialize on the lock and the second sees the first
// one's amount as already withdrawn.
func (r *balanceRepo) SubmitWithdrawal(ctx context.Context, withdrawal *models.Withdrawal) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer rollbackTx(tx)

	var (
		code sql.NullString
		rate float64
	)
	err = tx.QueryRowContext(ctx, `
		SELECT referral_code, commission_rate FROM users WHERE id = $1 FOR UPDATE
	`, withdrawal.UserID).Scan(&code, &rate)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrUserNotFound
	}
	if err != nil {
		return err
	}
	if !code.Valid {
		return apperrors.ErrNotAPartner
	}

	balance, err := reconcile(ctx, tx, withdrawal.UserID, code.String, rate)
	if err != nil {
		return err
	}
	if withdrawal.Amount > balance.Available {
		return apperrors.ErrInsufficientFunds
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO withdrawals (public_id, user_id, amount, pix_key, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, withdrawal.PublicID, withdrawal.UserID, withdrawal.Amount, withdrawal.PixKey, withdrawal.Status,
	).Scan(&withdrawal.ID, &withdrawal.CreatedAt)
	if err != nil {
		return err
	}

	return tx.Commit()
}
