package service

import (
	"context"
	"strings"

	"github.com/locacare/backend/internal/apperrors"
	"github.com/locacare/backend/internal/models"
	"github.com/locacare/backend/internal/repository"
)

type ClientService interface {
	CreateClient(ctx context.Context, client *models.Client) error
	GetClient(ctx context.Context, id int64) (*models.Client, error)
	ListClients(ctx context.Context) ([]models.Client, error)
	UpdateClient(ctx context.Context, client *models.Client) error
}

type clientService struct {
	repo repository.ClientRepository
}

func NewClientService(repo repository.ClientRepository) ClientService {
	return &clientService{repo: repo}
}

func validateClient(client *models.Client) error {
	client.FullName = strings.TrimSpace(client.FullName)
	client.WhatsappPhone = strings.TrimSpace(client.WhatsappPhone)
	client.City = strings.TrimSpace(client.City)
	if len(client.FullName) < 2 || len(client.WhatsappPhone) < 8 || len(client.City) < 2 {
		return apperrors.ErrInvalidRequest
	}
	return nil
}

func (s *clientService) CreateClient(ctx context.Context, client *models.Client) error {
	if err := validateClient(client); err != nil {
		return err
	}
	return s.repo.CreateClient(ctx, client)
}

func (s *clientService) GetClient(ctx context.Context, id int64) (*models.Client, error) {
	return s.repo.GetClientByID(ctx, id)
}

func (s *clientService) ListClients(ctx context.Context) ([]models.Client, error) {
	return s.repo.ListClients(ctx)
}

func (s *clientService) UpdateClient(ctx context.Context, client *models.Client) error {
	if err := validateClient(client); err != nil {
		return err
	}
	return s.repo.UpdateClient(ctx, client)
}
