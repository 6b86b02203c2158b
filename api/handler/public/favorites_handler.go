package public

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Favorites renders the client-side favorites page. The saved ids live in
// the browser's local storage; the page fetches the cars via /api/cars.
func (h *Handler) Favorites(c *gin.Context) {
	c.HTML(http.StatusOK, "favorites.html", gin.H{
		"Title": "Favorites",
	})
}

// CarsByIDs returns the cars matching the comma-separated ids parameter as
// a plain JSON array. Unknown and malformed ids are skipped; an empty or
// absent parameter yields an empty array.
func (h *Handler) CarsByIDs(c *gin.Context) {
	var ids []uint
	for _, part := range strings.Split(c.Query("ids"), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}

	list, err := h.cars.FindByIDs(ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cars"})
		return
	}
	c.JSON(http.StatusOK, list)
}
