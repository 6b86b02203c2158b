package models

import "time"

// CarImage is one gallery photo of a Car. Gallery order is insertion order.
type CarImage struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CarID     uint      `gorm:"index;not null" json:"car_id"`
	Path      string    `gorm:"not null" json:"path"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
