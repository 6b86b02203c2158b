package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OwnerPhotoForm shows the current owner portrait and the replace form.
func (h *Handler) OwnerPhotoForm(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_owner_photo.html", gin.H{
		"Title":      "Owner Photo",
		"OwnerPhoto": h.uploads.OwnerPortraitPath(),
	})
}

// UploadOwnerPhoto overwrites the single owner-portrait slot. Intentionally
// no versioning: last writer wins.
func (h *Handler) UploadOwnerPhoto(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil || file == nil {
		c.HTML(http.StatusBadRequest, "admin_owner_photo.html", gin.H{
			"Title":      "Owner Photo",
			"OwnerPhoto": h.uploads.OwnerPortraitPath(),
			"Error":      "Choose a photo to upload",
		})
		return
	}

	if _, err := h.uploads.SaveOwnerPortrait(file); err != nil {
		h.log.Error("failed to save owner portrait", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Title": "Error"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin/owner-photo")
}
