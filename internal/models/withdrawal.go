package models

import "time"

type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalPaid     WithdrawalStatus = "paid"
	WithdrawalRejected WithdrawalStatus = "rejected"
)

type Withdrawal struct {
	ID        int64            `json:"-" db:"id"`
	PublicID  string           `json:"id" db:"public_id"`
	UserID    int64            `json:"-" db:"user_id"`
	Amount    float64          `json:"amount" db:"amount"`
	PixKey    string           `json:"pix_key" db:"pix_key"`
	Status    WithdrawalStatus `json:"status" db:"status"`
	Note      *string          `json:"note,omitempty" db:"note"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
	DecidedAt *time.Time       `json:"decided_at,omitempty" db:"decided_at"`
}

type WithdrawalRequest struct {
	Amount float64 `json:"amount"`
	PixKey string  `json:"pix_key"`
}
