package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/locacare/backend/internal/apperrors"
	"github.com/locacare/backend/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByReferralCode(ctx context.Context, code string) (*models.User, error)
	AssignReferralCode(ctx context.Context, userID int64, code string, rate float64) error
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	DeleteUser(ctx context.Context, userID int64) error
	ListPartners(ctx context.Context) ([]models.User, error)
}

type userRepo struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepo{db: db}
}

const userColumns = `id, email, password_hash, name, role, referral_code, commission_rate, referral_balance, created_at`

func scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Email, &user.Password, &user.Name, &user.Role,
		&user.ReferralCode, &user.Rate, &user.Balance, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) CreateUser(ctx context.Context, user *models.User) error {
	existing, err := r.GetUserByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}
	if existing != nil {
		return apperrors.ErrUserAlreadyExists
	}

	query := `INSERT INTO users (email, password_hash, name, role) VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, user.Email, user.Password, user.Name, user.Role).Scan(&user.ID)
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepo) GetUserByReferralCode(ctx context.Context, code string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE referral_code=$1`
	return scanUser(r.db.QueryRowContext(ctx, query, code))
}

func (r *userRepo) AssignReferralCode(ctx context.Context, userID int64, code string, rate float64) error {
	holder, err := r.GetUserByReferralCode(ctx, code)
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}
	if holder != nil && holder.ID != userID {
		return apperrors.ErrReferralCodeTaken
	}

	query := `UPDATE users SET referral_code=$1, commission_rate=$2, role=$3 WHERE id=$4`
	res, err := r.db.ExecContext(ctx, query, code, rate, models.RolePartner, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

func (r *userRepo) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET password_hash=$1 WHERE id=$2`, passwordHash, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

func (r *userRepo) DeleteUser(ctx context.Context, userID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id=$1`, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

func (r *userRepo) ListPartners(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE referral_code IS NOT NULL ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows)

	var partners []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Email, &user.Password, &user.Name, &user.Role,
			&user.ReferralCode, &user.Rate, &user.Balance, &user.CreatedAt); err != nil {
			return nil, err
		}
		partners = append(partners, user)
	}
	return partners, rows.Err()
}
