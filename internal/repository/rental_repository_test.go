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

func newRental(clientID int64, status models.RentalStatus, code string, totalValue float64) *models.Rental {
	rental := &models.Rental{
		PublicID:   uuid.NewString(),
		ClientID:   clientID,
		Status:     status,
		TotalValue: totalValue,
	}
	if code != "" {
		rental.ReferralCode = &code
	}
	return rental
}

func TestRentalRepo_CreateRental(t *testing.T) {
	r := NewRentalRepository(testDB)
	ctx := context.Background()

	t.Run("lead insert does not post commission", func(t *testing.T) {
		resetTables(t)
		partnerID := seedPartner(t, "maria@clinic.com", "MARIA10", 10)
		clientID := seedClient(t, "Ana Souza")

		rental := newRental(clientID, models.StatusLead, "MARIA10", 150)
		require.NoError(t, r.CreateRental(ctx, rental))

		assert.NotZero(t, rental.ID)
		assert.Nil(t, rental.ConfirmedAt)
		assert.Equal(t, 0.0, partnerPostedBalance(t, partnerID))
	})

	t.Run("insert directly in confirmed status posts once", func(t *testing.T) {
		resetTables(t)
		partnerID := seedPartner(t, "maria@clinic.com", "MARIA10", 10)
		clientID := seedClient(t, "Ana Souza")

		rental := newRental(clientID, models.StatusConfirmed, "MARIA10", 150)
		require.NoError(t, r.CreateRental(ctx, rental))

		assert.NotNil(t, rental.ConfirmedAt)
		assert.Equal(t, 15.0, partnerPostedBalance(t, partnerID))
	})

	t.Run("unknown referral code is a logged no-op", func(t *testing.T) {
		resetTables(t)
		clientID := seedClient(t, "Ana Souza")

		rental := newRental(clientID, models.StatusConfirmed, "GHOST", 150)
		require.NoError(t, r.CreateRental(ctx, rental))

		stored, err := r.GetRentalByPublicID(ctx, rental.PublicID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusConfirmed, stored.Status)
	})
}

func TestRentalRepo_UpdateRentalStatus(t *testing.T) {
	r := NewRentalRepository(testDB)
	ctx := context.Background()

	t.Run("confirmation posts the commission once", func(t *testing.T) {
		resetTables(t)
		partnerID := seedPartner(t, "maria@clinic.com", "MARIA10", 10)
		clientID := seedClient(t, "Ana Souza")

		rental := newRental(clientID, models.StatusLead, "MARIA10", 150)
		require.NoError(t, r.CreateRental(ctx, rental))

		updated, err := r.UpdateRentalStatus(ctx, rental.PublicID, models.StatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, models.StatusConfirmed, updated.Status)
		assert.NotNil(t, updated.ConfirmedAt)
		assert.Equal(t, 15.0, partnerPostedBalance(t, partnerID))
	})

	t.Run("full lifecycle credits the partner exactly once", func(t *testing.T) {
		resetTables(t)
		partnerID := seedPartner(t, "maria@clinic.com", "MARIA10", 10)
		clientID := seedClient(t, "Ana Souza")

		rental := newRental(clientID, models.StatusLead, "MARIA10", 150)
		require.NoError(t, r.CreateRental(ctx, rental))

		for _, status := range []models.RentalStatus{
			models.StatusQuoteSent,
			models.StatusAwaitingPayment,
			models.StatusConfirmed,
			models.StatusConfirmed,
			models.StatusOutForDelivery,
			models.StatusInUse,
			models.StatusAwaitingPickup,
			models.StatusCompleted,
		} {
			_, err := r.UpdateRentalStatus(ctx, rental.PublicID, status)
			require.NoError(t, err)
		}

		assert.Equal(t, 15.0, partnerPostedBalance(t, partnerID))
	})

	t.Run("cancellation after confirmation keeps the posted commission", func(t *testing.T) {
		resetTables(t)
		partnerID := seedPartner(t, "maria@clinic.com", "MARIA10", 10)
		clientID := seedClient(t, "Ana Souza")

		rental := newRental(clientID, models.StatusConfirmed, "MARIA10", 150)
		require.NoError(t, r.CreateRental(ctx, rental))

		_, err := r.UpdateRentalStatus(ctx, rental.PublicID, models.StatusCancelled)
		require.NoError(t, err)

		assert.Equal(t, 15.0, partnerPostedBalance(t, partnerID))
	})

	t.Run("re-entry into the confirmed class posts again", func(t *testing.T) {
		resetTables(t)
		partnerID := seedPartner(t, "maria@clinic.com", "MARIA10", 10)
		clientID := seedClient(t, "Ana Souza")

		rental := newRental(clientID, models.StatusConfirmed, "MARIA10", 150)
		require.NoError(t, r.CreateRental(ctx, rental))

		_, err := r.UpdateRentalStatus(ctx, rental.PublicID, models.StatusCancelled)
		require.NoError(t, err)
		_, err = r.UpdateRentalStatus(ctx, rental.PublicID, models.StatusConfirmed)
		require.NoError(t, err)

		assert.Equal(t, 30.0, partnerPostedBalance(t, partnerID))
	})

	t.Run("partner rate is applied at posting time", func(t *testing.T) {
		resetTables(t)
		partnerID := seedPartner(t, "joao@clinic.com", "JOAO15", 15)
		clientID := seedClient(t, "Ana Souza")

		rental := newRental(clientID, models.StatusLead, "JOAO15", 320)
		require.NoError(t, r.CreateRental(ctx, rental))

		_, err := r.UpdateRentalStatus(ctx, rental.PublicID, models.StatusOutForDelivery)
		require.NoError(t, err)

		assert.Equal(t, 48.0, partnerPostedBalance(t, partnerID))
	})

	t.Run("rental without referral code never posts", func(t *testing.T) {
		resetTables(t)
		partnerID := seedPartner(t, "maria@clinic.com", "MARIA10", 10)
		clientID := seedClient(t, "Ana Souza")

		rental := newRental(clientID, models.StatusLead, "", 150)
		require.NoError(t, r.CreateRental(ctx, rental))

		_, err := r.UpdateRentalStatus(ctx, rental.PublicID, models.StatusConfirmed)
		require.NoError(t, err)

		assert.Equal(t, 0.0, partnerPostedBalance(t, partnerID))
	})

	t.Run("unknown rental", func(t *testing.T) {
		resetTables(t)

		_, err := r.UpdateRentalStatus(ctx, uuid.NewString(), models.StatusConfirmed)
		assert.ErrorIs(t, err, apperrors.ErrRentalNotFound)
	})
}

func TestRentalRepo_ListRentals(t *testing.T) {
	r := NewRentalRepository(testDB)
	ctx := context.Background()

	resetTables(t)
	clientID := seedClient(t, "Ana Souza")

	require.NoError(t, r.CreateRental(ctx, newRental(clientID, models.StatusLead, "", 0)))
	require.NoError(t, r.CreateRental(ctx, newRental(clientID, models.StatusLead, "", 0)))
	require.NoError(t, r.CreateRental(ctx, newRental(clientID, models.StatusInUse, "", 150)))

	all, err := r.ListRentals(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	lead := models.StatusLead
	leads, err := r.ListRentals(ctx, &lead)
	require.NoError(t, err)
	assert.Len(t, leads, 2)

	cancelled := models.StatusCancelled
	none, err := r.ListRentals(ctx, &cancelled)
	require.NoError(t, err)
	assert.Empty(t, none)
}
