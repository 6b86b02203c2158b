package admin

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// DeleteImage removes one gallery image. The image must belong to the car
// named in the URL; an orphaned or mismatched id is a 404.
func (h *Handler) DeleteImage(c *gin.Context) {
	carID, ok := h.carID(c)
	if !ok {
		return
	}

	imageID, err := strconv.ParseUint(c.Param("imageId"), 10, 32)
	if err != nil {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"Title": "Not Found"})
		return
	}

	path, err := h.cars.DeleteImage(uint(imageID), carID)
	if err != nil {
		h.renderCarError(c, err)
		return
	}

	h.uploads.Remove(path)

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/admin/cars/%d/edit", carID))
}
