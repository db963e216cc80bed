package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locacare/backend/internal/apperrors"
	"github.com/locacare/backend/internal/models"
)

func TestWithdrawalRepo_DecideWithdrawal(t *testing.T) {
	r := NewWithdrawalRepository(testDB)
	ctx := context.Background()

	t.Run("pending withdrawal marked paid", func(t *testing.T) {
		resetTables(t)
		partnerID := seedPartner(t, "maria@clinic.com", "MARIA10", 10)
		publicID := seedWithdrawal(t, partnerID, 50, models.WithdrawalPending)

		note := "transferred"
		decided, err := r.DecideWithdrawal(ctx, publicID, models.WithdrawalPaid, &note)
		require.NoError(t, err)

		assert.Equal(t, models.WithdrawalPaid, decided.Status)
		require.NotNil(t, decided.Note)
		assert.Equal(t, "transferred", *decided.Note)
		assert.NotNil(t, decided.DecidedAt)
	})

	t.Run("second decision conflicts and keeps the first", func(t *testing.T) {
		resetTables(t)
		partnerID := seedPartner(t, "maria@clinic.com", "MARIA10", 10)
		publicID := seedWithdrawal(t, partnerID, 50, models.WithdrawalPending)

		_, err := r.DecideWithdrawal(ctx, publicID, models.WithdrawalPaid, nil)
		require.NoError(t, err)

		_, err = r.DecideWithdrawal(ctx, publicID, models.WithdrawalRejected, nil)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyDecided)

		stored, err := r.GetWithdrawalByPublicID(ctx, publicID)
		require.NoError(t, err)
		assert.Equal(t, models.WithdrawalPaid, stored.Status)
	})

	t.Run("unknown withdrawal", func(t *testing.T) {
		resetTables(t)

		_, err := r.DecideWithdrawal(ctx, uuid.NewString(), models.WithdrawalPaid, nil)
		assert.ErrorIs(t, err, apperrors.ErrWithdrawalNotFound)
	})
}

func TestWithdrawalRepo_Lists(t *testing.T) {
	r := NewWithdrawalRepository(testDB)
	ctx := context.Background()

	resetTables(t)
	mariaID := seedPartner(t, "maria@clinic.com", "MARIA10", 10)
	joaoID := seedPartner(t, "joao@clinic.com", "JOAO15", 15)

	seedWithdrawal(t, mariaID, 50, models.WithdrawalPending)
	seedWithdrawal(t, mariaID, 30, models.WithdrawalPaid)
	seedWithdrawal(t, joaoID, 20, models.WithdrawalPending)

	byUser, err := r.ListWithdrawalsByUser(ctx, mariaID)
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	all, err := r.ListWithdrawals(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	pending := models.WithdrawalPending
	pendingOnly, err := r.ListWithdrawals(ctx, &pending)
	require.NoError(t, err)
	assert.Len(t, pendingOnly, 2)
	for _, w := range pendingOnly {
		assert.Equal(t, models.WithdrawalPending, w.Status)
	}
}
