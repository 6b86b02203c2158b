package public

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"carlot/database/models"
	"carlot/database/repo/cars"
	"carlot/internal/uploads"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupHandler(t *testing.T) (*Handler, *cars.Repository) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Car{}, &models.CarImage{}))

	store, err := uploads.NewStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	repo := cars.NewRepository(db)
	return NewHandler(repo, store), repo
}

func setupRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/cars", h.CarsByIDs)
	return router
}

func TestCarsByIDs_SubsetOfExistingIDs(t *testing.T) {
	h, repo := setupHandler(t)
	router := setupRouter(h)

	id1, err := repo.Insert(&models.Car{Title: "first"})
	require.NoError(t, err)
	_, err = repo.Insert(&models.Car{Title: "second"})
	require.NoError(t, err)
	id3, err := repo.Insert(&models.Car{Title: "third"})
	require.NoError(t, err)

	// ids 2,5,9 style: some exist, some do not
	url := fmt.Sprintf("/api/cars?ids=%d,%d,9999", id1, id3)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var got []models.Car
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)

	names := []string{got[0].Title, got[1].Title}
	assert.ElementsMatch(t, []string{"first", "third"}, names)
}

func TestCarsByIDs_EmptyParameterYieldsEmptyArray(t *testing.T) {
	h, repo := setupHandler(t)
	router := setupRouter(h)

	_, err := repo.Insert(&models.Car{Title: "present"})
	require.NoError(t, err)

	for _, url := range []string{"/api/cars", "/api/cars?ids=", "/api/cars?ids=,,"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		// a JSON array, not null and not an envelope
		assert.Equal(t, "[]", w.Body.String())
	}
}

func TestCarsByIDs_MalformedIDsSkipped(t *testing.T) {
	h, repo := setupHandler(t)
	router := setupRouter(h)

	id, err := repo.Insert(&models.Car{Title: "only"})
	require.NoError(t, err)

	url := fmt.Sprintf("/api/cars?ids=abc,%d,-3", id)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var got []models.Car
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 1)
	assert.Equal(t, "only", got[0].Title)
}
