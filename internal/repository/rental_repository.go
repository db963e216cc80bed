package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/locacare/backend/internal/apperrors"
	"github.com/locacare/backend/internal/commission"
	"github.com/locacare/backend/internal/logger"
	"github.com/locacare/backend/internal/models"
)

type RentalRepository interface {
	CreateRental(ctx context.Context, rental *models.Rental) error
	GetRentalByPublicID(ctx context.Context, publicID string) (*models.Rental, error)
	ListRentals(ctx context.Context, status *models.RentalStatus) ([]models.Rental, error)
	UpdateRentalStatus(ctx context.Context, publicID string, newStatus models.RentalStatus) (*models.Rental, error)
}

type rentalRepo struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) RentalRepository {
	return &rentalRepo{db: db}
}

const rentalColumns = `id, public_id, client_id, plan_id, chair_id, status, referral_code, total_value, lead_source, created_at, confirmed_at`

// CreateRental inserts the rental and, when it is created directly in a
// confirmed-class status with a referral code, posts the commission in the
// same transaction.
func (r *rentalRepo) CreateRental(ctx context.Context, rental *models.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer rollbackTx(tx)

	if commission.Confirmed(rental.Status) {
		now := time.Now()
		rental.ConfirmedAt = &now
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO rentals (public_id, client_id, plan_id, chair_id, status, referral_code, total_value, lead_source, confirmed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`, rental.PublicID, rental.ClientID, rental.PlanID, rental.ChairID, rental.Status,
		rental.ReferralCode, rental.TotalValue, rental.LeadSource, rental.ConfirmedAt,
	).Scan(&rental.ID, &rental.CreatedAt)
	if err != nil {
		return err
	}

	// Insert counts as a transition from "no status", which is outside the
	// confirmed class.
	if err := r.postCommission(ctx, tx, rental, "", rental.Status); err != nil {
		return err
	}

	return tx.Commit()
}

// UpdateRentalStatus changes the lifecycle status and applies the commission
// posting rule atomically. The row lock makes the old status read and the
// write a single unit, so concurrent updates cannot both observe a
// pre-confirmed status and double-post.
func (r *rentalRepo) UpdateRentalStatus(ctx context.Context, publicID string, newStatus models.RentalStatus) (*models.Rental, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer rollbackTx(tx)

	var rental models.Rental
	err = tx.QueryRowContext(ctx, `
		SELECT `+rentalColumns+` FROM rentals WHERE public_id=$1 FOR UPDATE
	`, publicID).Scan(&rental.ID, &rental.PublicID, &rental.ClientID, &rental.PlanID, &rental.ChairID,
		&rental.Status, &rental.ReferralCode, &rental.TotalValue, &rental.LeadSource,
		&rental.CreatedAt, &rental.ConfirmedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrRentalNotFound
	}
	if err != nil {
		return nil, err
	}

	oldStatus := rental.Status

	confirmedAt := rental.ConfirmedAt
	if confirmedAt == nil && commission.Confirmed(newStatus) {
		now := time.Now()
		confirmedAt = &now
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE rentals SET status=$1, confirmed_at=$2 WHERE id=$3
	`, newStatus, confirmedAt, rental.ID)
	if err != nil {
		return nil, err
	}

	if err := r.postCommission(ctx, tx, &rental, oldStatus, newStatus); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	rental.Status = newStatus
	rental.ConfirmedAt = confirmedAt
	return &rental, nil
}

// postCommission credits the referring partner when the transition newly
// enters the confirmed class. A referral code that matches no partner is a
// deliberate no-op so rental updates are never blocked by referral
// bookkeeping; it is logged as an anomaly instead.
func (r *rentalRepo) postCommission(ctx context.Context, tx *sql.Tx, rental *models.Rental, oldStatus, newStatus models.RentalStatus) error {
	if rental.ReferralCode == nil || *rental.ReferralCode == "" {
		return nil
	}
	if !commission.Confirmed(newStatus) || commission.Confirmed(oldStatus) {
		return nil
	}

	var rate float64
	err := tx.QueryRowContext(ctx, `
		SELECT COALESCE(commission_rate, $1) FROM users WHERE referral_code=$2
	`, commission.DefaultRate, *rental.ReferralCode).Scan(&rate)
	if errors.Is(err, sql.ErrNoRows) {
		logger.Log.Warn("referral code matches no partner, commission skipped",
			zap.String("rental", rental.PublicID),
			zap.String("referral_code", *rental.ReferralCode))
		return nil
	}
	if err != nil {
		return err
	}

	posting, ok := commission.PostingFor(oldStatus, newStatus, rental.ReferralCode, rental.TotalValue, rate)
	if !ok {
		return nil
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE users SET referral_balance = referral_balance + $1 WHERE referral_code=$2
	`, posting.Amount, posting.ReferralCode)
	if err != nil {
		return err
	}

	logger.Log.Info("commission posted",
		zap.String("rental", rental.PublicID),
		zap.String("referral_code", posting.ReferralCode),
		zap.Float64("amount", posting.Amount))
	return nil
}

func (r *rentalRepo) GetRentalByPublicID(ctx context.Context, publicID string) (*models.Rental, error) {
	var rental models.Rental
	err := r.db.QueryRowContext(ctx, `
		SELECT `+rentalColumns+` FROM rentals WHERE public_id=$1
	`, publicID).Scan(&rental.ID, &rental.PublicID, &rental.ClientID, &rental.PlanID, &rental.ChairID,
		&rental.Status, &rental.ReferralCode, &rental.TotalValue, &rental.LeadSource,
		&rental.CreatedAt, &rental.ConfirmedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrRentalNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rental, nil
}

func (r *rentalRepo) ListRentals(ctx context.Context, status *models.RentalStatus) ([]models.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals`
	args := []any{}
	if status != nil {
		query += ` WHERE status=$1`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.Error("failed to query rentals", zap.Error(err))
		return nil, err
	}
	defer closeRows(rows)

	var rentals []models.Rental
	for rows.Next() {
		var rental models.Rental
		if err := rows.Scan(&rental.ID, &rental.PublicID, &rental.ClientID, &rental.PlanID, &rental.ChairID,
			&rental.Status, &rental.ReferralCode, &rental.TotalValue, &rental.LeadSource,
			&rental.CreatedAt, &rental.ConfirmedAt); err != nil {
			return nil, err
		}
		rentals = append(rentals, rental)
	}
	return rentals, rows.Err()
}
