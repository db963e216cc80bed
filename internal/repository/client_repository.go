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

type ClientRepository interface {
	CreateClient(ctx context.Context, client *models.Client) error
	GetClientByID(ctx context.Context, id int64) (*models.Client, error)
	ListClients(ctx context.Context) ([]models.Client, error)
	UpdateClient(ctx context.Context, client *models.Client) error
}

type clientRepo struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) ClientRepository {
	return &clientRepo{db: db}
}

const clientColumns = `id, full_name, whatsapp_phone, email, city, district, notes, created_at`

func (r *clientRepo) CreateClient(ctx context.Context, client *models.Client) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO clients (full_name, whatsapp_phone, email, city, district, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, client.FullName, client.WhatsappPhone, client.Email, client.City, client.District, client.Notes,
	).Scan(&client.ID, &client.CreatedAt)
}

func (r *clientRepo) GetClientByID(ctx context.Context, id int64) (*models.Client, error) {
	var client models.Client
	err := r.db.QueryRowContext(ctx, `
		SELECT `+clientColumns+` FROM clients WHERE id=$1
	`, id).Scan(&client.ID, &client.FullName, &client.WhatsappPhone, &client.Email,
		&client.City, &client.District, &client.Notes, &client.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrClientNotFound
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepo) ListClients(ctx context.Context) ([]models.Client, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY created_at DESC`)
	if err != nil {
		logger.Log.Error("failed to query clients", zap.Error(err))
		return nil, err
	}
	defer closeRows(rows)

	var clients []models.Client
	for rows.Next() {
		var client models.Client
		if err := rows.Scan(&client.ID, &client.FullName, &client.WhatsappPhone, &client.Email,
			&client.City, &client.District, &client.Notes, &client.CreatedAt); err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	return clients, rows.Err()
}

func (r *clientRepo) UpdateClient(ctx context.Context, client *models.Client) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE clients SET full_name=$1, whatsapp_phone=$2, email=$3, city=$4, district=$5, notes=$6
		WHERE id=$7
	`, client.FullName, client.WhatsappPhone, client.Email, client.City, client.District, client.Notes, client.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrClientNotFound
	}
	return nil
}
