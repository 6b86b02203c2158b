package cars

import (
	"strings"

	"gorm.io/gorm"
)

// Filter is the set of optional search refinements. String fields are unset
// when empty; numeric fields are unset when nil, so a minimum price of 0 is
// a real filter, distinct from "not specified".
type Filter struct {
	Query        string // case-insensitive substring over title, brand, model
	Fuel         string // exact match
	Brand        string // substring
	Model        string // substring
	Transmission string // exact match
	MinPrice     *float64
	MaxPrice     *float64
	MinYear      *int
	MaxYear      *int
	MaxMileage   *int
}

// IsZero reports whether no refinement is set. A zero filter must yield the
// unfiltered newest-first listing.
func (f Filter) IsZero() bool {
	return f.Query == "" && f.Fuel == "" && f.Brand == "" && f.Model == "" &&
		f.Transmission == "" && f.MinPrice == nil && f.MaxPrice == nil &&
		f.MinYear == nil && f.MaxYear == nil && f.MaxMileage == nil
}

// apply chains the filter's predicates onto db. The free-text query ORs
// across title/brand/model; everything else ANDs.
func (f Filter) apply(db *gorm.DB) *gorm.DB {
	if f.Query != "" {
		pattern := "%" + strings.ToLower(f.Query) + "%"
		db = db.Where(
			"LOWER(title) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(model) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if f.Fuel != "" {
		db = db.Where("fuel_type = ?", f.Fuel)
	}
	if f.Brand != "" {
		db = db.Where("LOWER(brand) LIKE ?", "%"+strings.ToLower(f.Brand)+"%")
	}
	if f.Model != "" {
		db = db.Where("LOWER(model) LIKE ?", "%"+strings.ToLower(f.Model)+"%")
	}
	if f.Transmission != "" {
		db = db.Where("transmission = ?", f.Transmission)
	}
	if f.MinPrice != nil {
		db = db.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		db = db.Where("price <= ?", *f.MaxPrice)
	}
	if f.MinYear != nil {
		db = db.Where("year >= ?", *f.MinYear)
	}
	if f.MaxYear != nil {
		db = db.Where("year <= ?", *f.MaxYear)
	}
	if f.MaxMileage != nil {
		db = db.Where("mileage <= ?", *f.MaxMileage)
	}
	return db
}
