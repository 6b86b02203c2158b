package public

import (
	"errors"
	"net/http"
	"strconv"

	"carlot/database/repo/cars"
	"carlot/utils/form"

	"github.com/gin-gonic/gin"
)

// Home renders the landing page: the newest listings plus the owner
// portrait, if one has been uploaded.
func (h *Handler) Home(c *gin.Context) {
	list, err := h.cars.List(cars.Filter{})
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Title": "Error"})
		return
	}

	if len(list) > 6 {
		list = list[:6]
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title":      "Home",
		"Cars":       list,
		"OwnerPhoto": h.uploads.OwnerPortraitPath(),
	})
}

// ListCars renders the catalog, filtered by whatever query parameters are
// set. No parameters means the full newest-first listing.
func (h *Handler) ListCars(c *gin.Context) {
	filter := parseFilter(c)

	list, err := h.cars.List(filter)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Title": "Error"})
		return
	}

	c.HTML(http.StatusOK, "cars.html", gin.H{
		"Title":  "Cars",
		"Cars":   list,
		"Filter": filter,
		"Query":  c.Request.URL.Query(),
	})
}

// CarDetail renders one car with its gallery, or a 404 page.
func (h *Handler) CarDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"Title": "Not Found"})
		return
	}

	car, err := h.cars.Get(uint(id))
	if err != nil {
		if errors.Is(err, cars.ErrNotFound) {
			c.HTML(http.StatusNotFound, "404.html", gin.H{"Title": "Not Found"})
			return
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Title": "Error"})
		return
	}

	images, err := h.cars.ListImages(car.ID)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Title": "Error"})
		return
	}

	c.HTML(http.StatusOK, "car.html", gin.H{
		"Title":  car.Title,
		"Car":    car,
		"Images": images,
	})
}

// parseFilter reads the optional search refinements from query parameters.
// Empty values stay unset; "0" is a real numeric bound.
func parseFilter(c *gin.Context) cars.Filter {
	return cars.Filter{
		Query:        c.Query("q"),
		Fuel:         c.Query("fuel"),
		Brand:        c.Query("brand"),
		Model:        c.Query("model"),
		Transmission: c.Query("transmission"),
		MinPrice:     form.OptionalFloat(c.Query("minPrice")),
		MaxPrice:     form.OptionalFloat(c.Query("maxPrice")),
		MinYear:      form.OptionalInt(c.Query("minYear")),
		MaxYear:      form.OptionalInt(c.Query("maxYear")),
		MaxMileage:   form.OptionalInt(c.Query("maxKm")),
	}
}
