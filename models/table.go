package models

import "time"

type Floor struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}

// Table is a physical seating unit. Occupancy is derived from active
// orders at read time, never stored on the row.
type Table struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FloorID     uint      `json:"floor_id" gorm:"not null"`
	TableNumber string    `json:"table_number" gorm:"uniqueIndex;not null"`
	Seats       int       `json:"seats" gorm:"default:4"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
