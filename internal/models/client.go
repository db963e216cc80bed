package models

import "time"

type Client struct {
	ID            int64     `json:"id" db:"id"`
	FullName      string    `json:"full_name" db:"full_name"`
	WhatsappPhone string    `json:"whatsapp_phone" db:"whatsapp_phone"`
	Email         *string   `json:"email,omitempty" db:"email"`
	City          string    `json:"city" db:"city"`
	District      *string   `json:"district,omitempty" db:"district"`
	Notes         *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
