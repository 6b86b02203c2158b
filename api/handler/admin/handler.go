// Package admin serves the password-gated management area: car CRUD with
// image uploads, gallery maintenance, and the owner portrait slot.
package admin

import (
	"mime/multipart"

	"carlot/database/models"
	"carlot/database/repo/cars"
	"carlot/internal/uploads"
	"carlot/utils/form"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler holds the admin area's dependencies.
type Handler struct {
	cars    *cars.Repository
	uploads *uploads.Store
	log     *zap.Logger
}

func NewHandler(carRepo *cars.Repository, store *uploads.Store, log *zap.Logger) *Handler {
	return &Handler{cars: carRepo, uploads: store, log: log}
}

// carFromForm reads the editable car fields from the posted form. Missing or
// non-numeric optional fields become NULL, never an error.
func carFromForm(c *gin.Context) *models.Car {
	return &models.Car{
		Title:        c.PostForm("title"),
		Description:  c.PostForm("description"),
		Price:        form.OptionalFloat(c.PostForm("price")),
		Year:         form.OptionalInt(c.PostForm("year")),
		Mileage:      form.OptionalInt(c.PostForm("mileage")),
		Brand:        c.PostForm("brand"),
		Model:        c.PostForm("model"),
		FuelType:     c.PostForm("fuel_type"),
		Transmission: c.PostForm("transmission"),
	}
}

// galleryFiles returns the uploaded gallery files, capped at the per-request
// limit.
func galleryFiles(c *gin.Context) []*multipart.FileHeader {
	mpForm, err := c.MultipartForm()
	if err != nil || mpForm == nil {
		return nil
	}
	files := mpForm.File["gallery"]
	if len(files) > uploads.MaxGalleryFiles {
		files = files[:uploads.MaxGalleryFiles]
	}
	return files
}
