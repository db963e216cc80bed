package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/locacare/backend/internal/apperrors"
	"github.com/locacare/backend/internal/logger"
	"github.com/locacare/backend/internal/models"
	"github.com/locacare/backend/internal/repository"
	"github.com/locacare/backend/internal/utils"
)

type CreateRentalInput struct {
	ClientID     int64               `json:"client_id"`
	PlanID       *int64              `json:"plan_id,omitempty"`
	ChairID      *int64              `json:"chair_id,omitempty"`
	Status       models.RentalStatus `json:"status"`
	ReferralCode string              `json:"referral_code,omitempty"`
	TotalValue   float64             `json:"total_value"`
	LeadSource   string              `json:"lead_source,omitempty"`
}

type LeadInput struct {
	FullName      string `json:"full_name"`
	WhatsappPhone string `json:"whatsapp_phone"`
	Email         string `json:"email,omitempty"`
	City          string `json:"city"`
	District      string `json:"district,omitempty"`
	Message       string `json:"message,omitempty"`
	ReferralCode  string `json:"referral_code,omitempty"`
	PlanID        *int64 `json:"plan_id,omitempty"`
}

type RentalService interface {
	CreateRental(ctx context.Context, input CreateRentalInput) (*models.Rental, error)
	CreateLead(ctx context.Context, input LeadInput) (*models.Rental, error)
	GetRental(ctx context.Context, publicID string) (*models.Rental, error)
	ListRentals(ctx context.Context, status *models.RentalStatus) ([]models.Rental, error)
	UpdateStatus(ctx context.Context, publicID string, newStatus models.RentalStatus) (*models.Rental, error)
}

type rentalService struct {
	rentals repository.RentalRepository
	clients repository.ClientRepository
	plans   repository.PlanRepository
}

func NewRentalService(rentals repository.RentalRepository, clients repository.ClientRepository, plans repository.PlanRepository) RentalService {
	return &rentalService{rentals: rentals, clients: clients, plans: plans}
}

func (s *rentalService) CreateRental(ctx context.Context, input CreateRentalInput) (*models.Rental, error) {
	if !input.Status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}
	if input.TotalValue < 0 {
		return nil, apperrors.ErrInvalidTotalValue
	}
	if _, err := s.clients.GetClientByID(ctx, input.ClientID); err != nil {
		return nil, err
	}

	rental := &models.Rental{
		PublicID:   uuid.NewString(),
		ClientID:   input.ClientID,
		PlanID:     input.PlanID,
		ChairID:    input.ChairID,
		Status:     input.Status,
		TotalValue: utils.Round2(input.TotalValue),
	}
	if input.LeadSource != "" {
		rental.LeadSource = &input.LeadSource
	}

	if code := utils.NormalizeReferralCode(input.ReferralCode); code != "" {
		if !utils.IsValidReferralCode(code) {
			return nil, apperrors.ErrInvalidReferral
		}
		rental.ReferralCode = &code
	}

	if err := s.rentals.CreateRental(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

// CreateLead is the public intake path: it records the prospective client and
// opens a rental in the lead status. The referral code is captured verbatim
// at this point; commission attribution later compares against this snapshot
// no matter how partner codes change afterwards.
func (s *rentalService) CreateLead(ctx context.Context, input LeadInput) (*models.Rental, error) {
	name := strings.TrimSpace(input.FullName)
	phone := strings.TrimSpace(input.WhatsappPhone)
	city := strings.TrimSpace(input.City)
	if len(name) < 2 || len(phone) < 8 || len(city) < 2 {
		return nil, apperrors.ErrInvalidLeadInput
	}

	var totalValue float64
	if input.PlanID != nil {
		plan, err := s.plans.GetPlanByID(ctx, *input.PlanID)
		if err != nil {
			return nil, err
		}
		totalValue = plan.BasePrice
	}

	client := &models.Client{
		FullName:      name,
		WhatsappPhone: phone,
		City:          city,
	}
	if email := strings.TrimSpace(input.Email); email != "" {
		client.Email = &email
	}
	if district := strings.TrimSpace(input.District); district != "" {
		client.District = &district
	}
	if msg := strings.TrimSpace(input.Message); msg != "" {
		client.Notes = &msg
	}

	if err := s.clients.CreateClient(ctx, client); err != nil {
		return nil, err
	}

	leadSource := "site"
	rental := &models.Rental{
		PublicID:   uuid.NewString(),
		ClientID:   client.ID,
		PlanID:     input.PlanID,
		Status:     models.StatusLead,
		TotalValue: utils.Round2(totalValue),
		LeadSource: &leadSource,
	}
	if code := utils.NormalizeReferralCode(input.ReferralCode); code != "" {
		if !utils.IsValidReferralCode(code) {
			return nil, apperrors.ErrInvalidReferral
		}
		rental.ReferralCode = &code
	}

	if err := s.rentals.CreateRental(ctx, rental); err != nil {
		return nil, err
	}

	logger.Log.Info("lead created", zap.String("rental", rental.PublicID), zap.String("city", city))
	return rental, nil
}

func (s *rentalService) GetRental(ctx context.Context, publicID string) (*models.Rental, error) {
	return s.rentals.GetRentalByPublicID(ctx, publicID)
}

func (s *rentalService) ListRentals(ctx context.Context, status *models.RentalStatus) ([]models.Rental, error) {
	return s.rentals.ListRentals(ctx, status)
}

func (s *rentalService) UpdateStatus(ctx context.Context, publicID string, newStatus models.RentalStatus) (*models.Rental, error) {
	if !newStatus.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}

	current, err := s.rentals.GetRentalByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	// Completed rentals cannot be cancelled; other transitions stay free-form
	// so staff can correct mistakes. The commission rule is transition-based,
	// not path-based, so corrections never double-post.
	if current.Status == models.StatusCompleted && newStatus == models.StatusCancelled {
		return nil, apperrors.ErrRentalCompleted
	}

	return s.rentals.UpdateRentalStatus(ctx, publicID, newStatus)
}
