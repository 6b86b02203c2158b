package models

import "time"

// Car is one listing. Optional numeric fields are pointers so that absent or
// unparseable form input persists as NULL instead of a zero value.
type Car struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`

	Price   *float64 `json:"price"`
	Year    *int     `json:"year"`
	Mileage *int     `json:"mileage"`

	Brand        string `gorm:"index" json:"brand"`
	Model        string `gorm:"index" json:"model"`
	FuelType     string `json:"fuel_type"`
	Transmission string `json:"transmission"`

	// CoverImage is a repository-relative public path like /uploads/xyz.jpg.
	CoverImage string `json:"cover_image"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Images []CarImage `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
