// Package public serves the visitor-facing pages: listing with search,
// detail pages with galleries, the favorites page, and the small JSON API
// behind it.
package public

import (
	"carlot/database/repo/cars"
	"carlot/internal/uploads"
)

// Handler holds the public pages' dependencies.
type Handler struct {
	cars    *cars.Repository
	uploads *uploads.Store
}

func NewHandler(carRepo *cars.Repository, store *uploads.Store) *Handler {
	return &Handler{cars: carRepo, uploads: store}
}
