// Package commission holds the posting rule that converts rental status
// transitions into partner commission credits. The rule is a pure function so
// its at-most-once guarantee can be tested without a database; callers must
// apply the resulting posting in the same transaction as the status write.
package commission

import (
	"github.com/locacare/backend/internal/models"
	"github.com/locacare/backend/internal/utils"
)

// DefaultRate is the commission percentage used when a partner has none set.
const DefaultRate = 10

// confirmedClass is the set of statuses in which a rental counts as a
// confirmed sale for commission purposes.
var confirmedClass = map[models.RentalStatus]struct{}{
	models.StatusConfirmed:      {},
	models.StatusOutForDelivery: {},
	models.StatusInUse:          {},
	models.StatusAwaitingPickup: {},
	models.StatusCompleted:      {},
}

// Confirmed reports whether the status belongs to the confirmed class.
func Confirmed(s models.RentalStatus) bool {
	_, ok := confirmedClass[s]
	return ok
}

// Posting is a single commission credit against a partner's balance.
type Posting struct {
	ReferralCode string
	Amount       float64
}

// Amount computes the commission for a rental value at the given percentage
// rate, rounded to currency precision. A zero rate falls back to DefaultRate.
func Amount(totalValue, rate float64) float64 {
	if rate == 0 {
		rate = DefaultRate
	}
	return utils.Round2(totalValue * rate / 100)
}

// PostingFor decides whether a status transition earns a commission.
//
// A posting occurs iff the rental carries a referral code, the new status is
// in the confirmed class, and the old status was not. An insert has no old
// status; pass the zero value, which is outside the class, so a rental
// created directly in a confirmed status also posts. Re-entering the class
// (confirmed → in_use, or a confirmed → confirmed no-op update) never posts
// again.
func PostingFor(old, new models.RentalStatus, referralCode *string, totalValue, rate float64) (Posting, bool) {
	if referralCode == nil || *referralCode == "" {
		return Posting{}, false
	}
	if !Confirmed(new) || Confirmed(old) {
		return Posting{}, false
	}
	return Posting{
		ReferralCode: *referralCode,
		Amount:       Amount(totalValue, rate),
	}, true
}
