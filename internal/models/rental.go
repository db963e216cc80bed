package models

import "time"

// RentalStatus is the lifecycle state of a rental. Transitions are free-form
// (staff may correct a rental backwards); only entry into the confirmed class
// has side effects, see internal/commission.
type RentalStatus string

const (
	StatusLead            RentalStatus = "lead"
	StatusQuoteSent       RentalStatus = "quote_sent"
	StatusAwaitingPayment RentalStatus = "awaiting_payment"
	StatusConfirmed       RentalStatus = "confirmed"
	StatusOutForDelivery  RentalStatus = "out_for_delivery"
	StatusInUse           RentalStatus = "in_use"
	StatusAwaitingPickup  RentalStatus = "awaiting_pickup"
	StatusCompleted       RentalStatus = "completed"
	StatusCancelled       RentalStatus = "cancelled"
)

var rentalStatuses = map[RentalStatus]struct{}{
	StatusLead:            {},
	StatusQuoteSent:       {},
	StatusAwaitingPayment: {},
	StatusConfirmed:       {},
	StatusOutForDelivery:  {},
	StatusInUse:           {},
	StatusAwaitingPickup:  {},
	StatusCompleted:       {},
	StatusCancelled:       {},
}

func (s RentalStatus) Valid() bool {
	_, ok := rentalStatuses[s]
	return ok
}

func (s RentalStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type Rental struct {
	ID           int64        `json:"-" db:"id"`
	PublicID     string       `json:"id" db:"public_id"`
	ClientID     int64        `json:"client_id" db:"client_id"`
	PlanID       *int64       `json:"plan_id,omitempty" db:"plan_id"`
	ChairID      *int64       `json:"chair_id,omitempty" db:"chair_id"`
	Status       RentalStatus `json:"status" db:"status"`
	ReferralCode *string      `json:"referral_code,omitempty" db:"referral_code"`
	TotalValue   float64      `json:"total_value" db:"total_value"`
	LeadSource   *string      `json:"lead_source,omitempty" db:"lead_source"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
	ConfirmedAt  *time.Time   `json:"confirmed_at,omitempty" db:"confirmed_at"`
}
