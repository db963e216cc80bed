package commission

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/locacare/backend/internal/models"
)

func strPtr(s string) *string {
	return &s
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name       string
		totalValue float64
		rate       float64
		want       float64
	}{
		{
			name:       "default rate on standard value",
			totalValue: 150,
			rate:       10,
			want:       15,
		},
		{
			name:       "zero rate falls back to default",
			totalValue: 150,
			rate:       0,
			want:       15,
		},
		{
			name:       "custom rate",
			totalValue: 200,
			rate:       12.5,
			want:       25,
		},
		{
			name:       "rounds to currency precision",
			totalValue: 99.99,
			rate:       10,
			want:       10,
		},
		{
			name:       "rounds sub-cent fractions",
			totalValue: 33.33,
			rate:       10,
			want:       3.33,
		},
		{
			name:       "zero value earns nothing",
			totalValue: 0,
			rate:       10,
			want:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Amount(tt.totalValue, tt.rate)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestConfirmed(t *testing.T) {
	tests := []struct {
		status models.RentalStatus
		want   bool
	}{
		{models.StatusLead, false},
		{models.StatusQuoteSent, false},
		{models.StatusAwaitingPayment, false},
		{models.StatusConfirmed, true},
		{models.StatusOutForDelivery, true},
		{models.StatusInUse, true},
		{models.StatusAwaitingPickup, true},
		{models.StatusCompleted, true},
		{models.StatusCancelled, false},
		{models.RentalStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, Confirmed(tt.status))
		})
	}
}

func TestPostingFor(t *testing.T) {
	tests := []struct {
		name         string
		old          models.RentalStatus
		new          models.RentalStatus
		referralCode *string
		totalValue   float64
		rate         float64
		wantPosting  Posting
		wantOK       bool
	}{
		{
			name:         "lead confirmed with referral posts commission",
			old:          models.StatusLead,
			new:          models.StatusConfirmed,
			referralCode: strPtr("MARIA10"),
			totalValue:   150,
			rate:         10,
			wantPosting:  Posting{ReferralCode: "MARIA10", Amount: 15},
			wantOK:       true,
		},
		{
			name:         "insert directly into confirmed status posts",
			old:          models.RentalStatus(""),
			new:          models.StatusConfirmed,
			referralCode: strPtr("MARIA10"),
			totalValue:   200,
			rate:         10,
			wantPosting:  Posting{ReferralCode: "MARIA10", Amount: 20},
			wantOK:       true,
		},
		{
			name:         "move within the confirmed class does not post again",
			old:          models.StatusConfirmed,
			new:          models.StatusInUse,
			referralCode: strPtr("MARIA10"),
			totalValue:   150,
			rate:         10,
			wantOK:       false,
		},
		{
			name:         "confirmed no-op update does not post again",
			old:          models.StatusConfirmed,
			new:          models.StatusConfirmed,
			referralCode: strPtr("MARIA10"),
			totalValue:   150,
			rate:         10,
			wantOK:       false,
		},
		{
			name:         "completion after confirmation does not post again",
			old:          models.StatusInUse,
			new:          models.StatusCompleted,
			referralCode: strPtr("MARIA10"),
			totalValue:   150,
			rate:         10,
			wantOK:       false,
		},
		{
			name:         "cancellation does not post",
			old:          models.StatusConfirmed,
			new:          models.StatusCancelled,
			referralCode: strPtr("MARIA10"),
			totalValue:   150,
			rate:         10,
			wantOK:       false,
		},
		{
			name:         "re-entry after cancellation posts again",
			old:          models.StatusCancelled,
			new:          models.StatusConfirmed,
			referralCode: strPtr("MARIA10"),
			totalValue:   150,
			rate:         10,
			wantPosting:  Posting{ReferralCode: "MARIA10", Amount: 15},
			wantOK:       true,
		},
		{
			name:       "no referral code never posts",
			old:        models.StatusLead,
			new:        models.StatusConfirmed,
			totalValue: 150,
			rate:       10,
			wantOK:     false,
		},
		{
			name:         "empty referral code never posts",
			old:          models.StatusLead,
			new:          models.StatusConfirmed,
			referralCode: strPtr(""),
			totalValue:   150,
			rate:         10,
			wantOK:       false,
		},
		{
			name:         "non-confirmed transition does not post",
			old:          models.StatusLead,
			new:          models.StatusQuoteSent,
			referralCode: strPtr("MARIA10"),
			totalValue:   150,
			rate:         10,
			wantOK:       false,
		},
		{
			name:         "custom rate applied",
			old:          models.StatusAwaitingPayment,
			new:          models.StatusOutForDelivery,
			referralCode: strPtr("JOAO15"),
			totalValue:   320,
			rate:         15,
			wantPosting:  Posting{ReferralCode: "JOAO15", Amount: 48},
			wantOK:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PostingFor(tt.old, tt.new, tt.referralCode, tt.totalValue, tt.rate)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantPosting.ReferralCode, got.ReferralCode)
				assert.InDelta(t, tt.wantPosting.Amount, got.Amount, 1e-9)
			}
		})
	}
}

// A full lifecycle with many status writes must credit the partner exactly once.
func TestPostingForLifecyclePostsOnce(t *testing.T) {
	code := strPtr("MARIA10")
	lifecycle := []models.RentalStatus{
		models.StatusLead,
		models.StatusQuoteSent,
		models.StatusAwaitingPayment,
		models.StatusConfirmed,
		models.StatusConfirmed,
		models.StatusOutForDelivery,
		models.StatusInUse,
		models.StatusAwaitingPickup,
		models.StatusCompleted,
	}

	postings := 0
	old := models.RentalStatus("")
	for _, next := range lifecycle {
		if _, ok := PostingFor(old, next, code, 150, 10); ok {
			postings++
		}
		old = next
	}

	assert.Equal(t, 1, postings)
}
