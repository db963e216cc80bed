package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/locacare/backend/internal/apperrors"
	"github.com/locacare/backend/internal/models"
	"github.com/locacare/backend/internal/repository"
	"github.com/locacare/backend/internal/utils"
)

type BalanceService interface {
	GetPartnerBalance(ctx context.Context, userID int64) (models.PartnerBalance, error)
	GetWithdrawals(ctx context.Context, userID int64) ([]models.Withdrawal, error)
	ListWithdrawals(ctx context.Context, status *models.WithdrawalStatus) ([]models.Withdrawal, error)
	SubmitWithdrawal(ctx context.Context, userID int64, req models.WithdrawalRequest) (*models.Withdrawal, error)
	DecideWithdrawal(ctx context.Context, publicID string, decision models.WithdrawalStatus, note string) (*models.Withdrawal, error)
}

type balanceService struct {
	balances    repository.BalanceRepository
	withdrawals repository.WithdrawalRepository
}

func NewBalanceService(balances repository.BalanceRepository, withdrawals repository.WithdrawalRepository) BalanceService {
	return &balanceService{balances: balances, withdrawals: withdrawals}
}

func (s *balanceService) GetPartnerBalance(ctx context.Context, userID int64) (models.PartnerBalance, error) {
	return s.balances.GetReconciledBalance(ctx, userID)
}

func (s *balanceService) GetWithdrawals(ctx context.Context, userID int64) ([]models.Withdrawal, error) {
	return s.withdrawals.ListWithdrawalsByUser(ctx, userID)
}

func (s *balanceService) ListWithdrawals(ctx context.Context, status *models.WithdrawalStatus) ([]models.Withdrawal, error) {
	return s.withdrawals.ListWithdrawals(ctx, status)
}

// SubmitWithdrawal validates the request shape; the balance bound itself is
// enforced by the repository inside one transaction, so two rapid submissions
// cannot both pass a stale availability check.
func (s *balanceService) SubmitWithdrawal(ctx context.Context, userID int64, req models.WithdrawalRequest) (*models.Withdrawal, error) {
	amount := utils.Round2(req.Amount)
	if amount <= 0 {
		return nil, apperrors.ErrInvalidWithdrawal
	}

	pixKey := strings.TrimSpace(req.PixKey)
	if pixKey == "" {
		return nil, apperrors.ErrInvalidWithdrawal
	}

	withdrawal := &models.Withdrawal{
		PublicID: uuid.NewString(),
		UserID:   userID,
		Amount:   amount,
		PixKey:   pixKey,
		Status:   models.WithdrawalPending,
	}
	if err := s.balances.SubmitWithdrawal(ctx, withdrawal); err != nil {
		return nil, err
	}
	return withdrawal, nil
}

func (s *balanceService) DecideWithdrawal(ctx context.Context, publicID string, decision models.WithdrawalStatus, note string) (*models.Withdrawal, error) {
	if decision != models.WithdrawalPaid && decision != models.WithdrawalRejected {
		return nil, apperrors.ErrInvalidDecision
	}

	var notePtr *string
	if note = strings.TrimSpace(note); note != "" {
		notePtr = &note
	}
	return s.withdrawals.DecideWithdrawal(ctx, publicID, decision, notePtr)
}
