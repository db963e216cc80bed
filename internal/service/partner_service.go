package service

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/locacare/backend/internal/apperrors"
	"github.com/locacare/backend/internal/logger"
	"github.com/locacare/backend/internal/models"
	"github.com/locacare/backend/internal/repository"
	"github.com/locacare/backend/internal/utils"
)

type CreatePartnerInput struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     string  `json:"name"`
	Code     string  `json:"referral_code"`
	Rate     float64 `json:"commission_rate"`
}

type PartnerService interface {
	CreatePartner(ctx context.Context, input CreatePartnerInput) (*models.User, error)
	ListPartners(ctx context.Context) ([]models.User, error)
}

type partnerService struct {
	repo        repository.UserRepository
	defaultRate float64
}

func NewPartnerService(repo repository.UserRepository, defaultRate float64) PartnerService {
	return &partnerService{repo: repo, defaultRate: defaultRate}
}

// CreatePartner is the privileged account+ledger operation: create the
// identity row, then assign the referral code and rate. The second phase can
// fail independently (code collisions), so a failure there compensates by
// deleting the identity created in the first phase instead of leaving a
// half-promoted user behind.
func (s *partnerService) CreatePartner(ctx context.Context, input CreatePartnerInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	code := utils.NormalizeReferralCode(input.Code)

	if email == "" || input.Password == "" || input.Name == "" {
		return nil, apperrors.ErrInvalidRequest
	}
	if !utils.IsValidReferralCode(code) {
		return nil, apperrors.ErrInvalidReferral
	}

	rate := input.Rate
	if rate == 0 {
		rate = s.defaultRate
	}
	if rate < 0 || rate > 100 {
		return nil, apperrors.ErrInvalidRequest
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    email,
		Password: string(hashedPassword),
		Name:     input.Name,
		Role:     models.RolePartner,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	if err := s.repo.AssignReferralCode(ctx, user.ID, code, rate); err != nil {
		if delErr := s.repo.DeleteUser(ctx, user.ID); delErr != nil {
			logger.Log.Error("failed to clean up user after partner promotion failure",
				zap.Int64("user", user.ID), zap.Error(delErr))
		}
		return nil, err
	}

	user.ReferralCode = &code
	user.Rate = rate
	logger.Log.Info("partner created", zap.String("referral_code", code), zap.Float64("rate", rate))
	return user, nil
}

func (s *partnerService) ListPartners(ctx context.Context) ([]models.User, error) {
	return s.repo.ListPartners(ctx)
}
