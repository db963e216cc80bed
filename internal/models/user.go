package models

import "time"

const (
	RoleAdmin   = "admin"
	RoleStaff   = "staff"
	RolePartner = "partner"
	RoleUser    = "user"
)

type User struct {
	ID           int64     `json:"-" db:"id"`
	Email        string    `json:"email" db:"email"`
	Password     string    `json:"password,omitempty" db:"password_hash"`
	Name         string    `json:"name" db:"name"`
	Role         string    `json:"role" db:"role"`
	ReferralCode *string   `json:"referral_code,omitempty" db:"referral_code"`
	Rate         float64   `json:"commission_rate" db:"commission_rate"`
	Balance      float64   `json:"referral_balance" db:"referral_balance"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
