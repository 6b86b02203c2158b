package sessions

import (
	"errors"
	"fmt"
	"time"

	"carlot/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a session id does not exist.
var ErrNotFound = errors.New("session not found")

// Repository wraps the session table.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create stores a new authenticated session with a fixed expiry window.
func (r *Repository) Create(ttl time.Duration) (*models.Session, error) {
	now := time.Now()
	session := models.Session{
		ID:            uuid.NewString(),
		Authenticated: true,
		CreatedAt:     now,
		ExpiresAt:     now.Add(ttl),
	}
	if err := r.db.Create(&session).Error; err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return &session, nil
}

// Get loads a session by id.
func (r *Repository) Get(id string) (*models.Session, error) {
	var session models.Session
	if err := r.db.First(&session, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &session, nil
}

// Delete destroys a session. Deleting an unknown id is not an error.
func (r *Repository) Delete(id string) error {
	if err := r.db.Delete(&models.Session{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteExpired sweeps sessions past their expiry window.
func (r *Repository) DeleteExpired(now time.Time) (int64, error) {
	res := r.db.Where("expires_at < ?", now).Delete(&models.Session{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to sweep expired sessions: %w", res.Error)
	}
	return res.RowsAffected, nil
}
