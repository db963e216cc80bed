package models

import "time"

type ChairStatus string

const (
	ChairAvailable   ChairStatus = "available"
	ChairRented      ChairStatus = "rented"
	ChairMaintenance ChairStatus = "maintenance"
	ChairRetired     ChairStatus = "retired"
)

func (s ChairStatus) Valid() bool {
	switch s {
	case ChairAvailable, ChairRented, ChairMaintenance, ChairRetired:
		return true
	}
	return false
}

type Chair struct {
	ID           int64       `json:"id" db:"id"`
	Name         string      `json:"name" db:"name"`
	InternalCode *string     `json:"internal_code,omitempty" db:"internal_code"`
	Color        *string     `json:"color,omitempty" db:"color"`
	Material     *string     `json:"material,omitempty" db:"material"`
	Status       ChairStatus `json:"status" db:"status"`
	Description  *string     `json:"description,omitempty" db:"description"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
}
