package models

import "time"

type Plan struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	DurationDays int       `json:"duration_days" db:"duration_days"`
	BasePrice    float64   `json:"base_price" db:"base_price"`
	Active       bool      `json:"active" db:"active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
