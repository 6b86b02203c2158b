package admin

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"carlot/database/repo/cars"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListCars renders the management table, newest first.
func (h *Handler) ListCars(c *gin.Context) {
	list, err := h.cars.List(cars.Filter{})
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Title": "Error"})
		return
	}
	c.HTML(http.StatusOK, "admin_cars.html", gin.H{
		"Title": "Manage Cars",
		"Cars":  list,
	})
}

// NewCarForm renders an empty car form.
func (h *Handler) NewCarForm(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_car_form.html", gin.H{
		"Title": "New Car",
	})
}

// CreateCar inserts a car from the posted form, saving the cover image and
// up to ten gallery images. The row insert and the gallery inserts are not
// one transaction; a crash in between leaves a car without gallery rows,
// which the listing tolerates.
func (h *Handler) CreateCar(c *gin.Context) {
	car := carFromForm(c)

	if cover, err := c.FormFile("cover"); err == nil && cover != nil {
		path, err := h.uploads.Save(cover)
		if err != nil {
			h.log.Error("failed to save cover image", zap.Error(err))
			c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Title": "Error"})
			return
		}
		car.CoverImage = path
	}

	id, err := h.cars.Insert(car)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Title": "Error"})
		return
	}

	h.saveGallery(c, id)

	c.Redirect(http.StatusSeeOther, "/admin/cars")
}

// EditCarForm renders the form pre-filled with the car and its gallery.
func (h *Handler) EditCarForm(c *gin.Context) {
	id, ok := h.carID(c)
	if !ok {
		return
	}

	car, err := h.cars.Get(id)
	if err != nil {
		h.renderCarError(c, err)
		return
	}
	images, err := h.cars.ListImages(car.ID)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Title": "Error"})
		return
	}

	c.HTML(http.StatusOK, "admin_car_form.html", gin.H{
		"Title":  "Edit Car",
		"Car":    car,
		"Images": images,
	})
}

// UpdateCar applies the posted form to an existing car. A newly uploaded
// cover replaces the old one; the old file is removed best-effort.
func (h *Handler) UpdateCar(c *gin.Context) {
	id, ok := h.carID(c)
	if !ok {
		return
	}

	existing, err := h.cars.Get(id)
	if err != nil {
		h.renderCarError(c, err)
		return
	}

	car := carFromForm(c)
	car.CoverImage = existing.CoverImage

	oldCover := ""
	if cover, err := c.FormFile("cover"); err == nil && cover != nil {
		path, err := h.uploads.Save(cover)
		if err != nil {
			h.log.Error("failed to save cover image", zap.Error(err))
			c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Title": "Error"})
			return
		}
		oldCover = existing.CoverImage
		car.CoverImage = path
	}

	if err := h.cars.Update(id, car); err != nil {
		h.renderCarError(c, err)
		return
	}

	if oldCover != "" {
		h.uploads.Remove(oldCover)
	}

	h.saveGallery(c, id)

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/admin/cars/%d/edit", id))
}

// DeleteCar removes the car, its gallery rows, and best-effort deletes the
// files they referenced.
func (h *Handler) DeleteCar(c *gin.Context) {
	id, ok := h.carID(c)
	if !ok {
		return
	}

	paths, err := h.cars.Delete(id)
	if err != nil {
		h.renderCarError(c, err)
		return
	}

	h.uploads.RemoveAll(paths)

	c.Redirect(http.StatusSeeOther, "/admin/cars")
}

// saveGallery stores the uploaded gallery files and attaches them to the
// car. Failures on single files are logged and skipped so one bad file does
// not lose the rest.
func (h *Handler) saveGallery(c *gin.Context, carID uint) {
	for _, file := range galleryFiles(c) {
		path, err := h.uploads.Save(file)
		if err != nil {
			h.log.Error("failed to save gallery image", zap.Uint("car_id", carID), zap.Error(err))
			continue
		}
		if err := h.cars.InsertImage(carID, path); err != nil {
			h.log.Error("failed to attach gallery image", zap.Uint("car_id", carID), zap.Error(err))
			h.uploads.Remove(path)
		}
	}
}

func (h *Handler) carID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"Title": "Not Found"})
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) renderCarError(c *gin.Context, err error) {
	if errors.Is(err, cars.ErrNotFound) {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"Title": "Not Found"})
		return
	}
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Title": "Error"})
}
