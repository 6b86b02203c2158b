package cars

import (
	"context"
	"errors"
	"fmt"

	"carlot/database/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a car or image id does not exist (or an image
// does not belong to the stated car).
var ErrNotFound = errors.New("record not found")

// Repository wraps all car and gallery-image database operations.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns cars matching the filter, newest-created first. A zero filter
// returns the full listing.
func (r *Repository) List(filter Filter) ([]models.Car, error) {
	var cars []models.Car
	db := filter.apply(r.db.Model(&models.Car{}))
	if err := db.Order("created_at DESC, id DESC").Find(&cars).Error; err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	return cars, nil
}

// Get returns one car by id.
func (r *Repository) Get(id uint) (*models.Car, error) {
	var car models.Car
	if err := r.db.First(&car, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get car %d: %w", id, err)
	}
	return &car, nil
}

// FindByIDs returns the cars whose ids exist in the given list. Missing ids
// are silently skipped; an empty list yields an empty slice.
func (r *Repository) FindByIDs(ids []uint) ([]models.Car, error) {
	cars := []models.Car{}
	if len(ids) == 0 {
		return cars, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&cars).Error; err != nil {
		return nil, fmt.Errorf("failed to find cars by ids: %w", err)
	}
	return cars, nil
}

// Insert creates a car and returns its new id.
func (r *Repository) Insert(car *models.Car) (uint, error) {
	if err := r.db.Create(car).Error; err != nil {
		return 0, fmt.Errorf("failed to insert car: %w", err)
	}
	return car.ID, nil
}

// editableColumns are the fields an admin edit may change. CreatedAt is
// deliberately absent: it is set once and immutable.
var editableColumns = []string{
	"title", "description", "price", "year", "mileage",
	"brand", "model", "fuel_type", "transmission", "cover_image",
}

// Update replaces the editable fields of car id with the given values.
// Nil pointer fields are written as NULL.
func (r *Repository) Update(id uint, car *models.Car) error {
	res := r.db.Model(&models.Car{}).Where("id = ?", id).
		Select(editableColumns).Updates(car)
	if res.Error != nil {
		return fmt.Errorf("failed to update car %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a car and all of its gallery images, returning the public
// paths of every file that belonged to the row so the caller can clean up
// the uploads directory.
func (r *Repository) Delete(id uint) ([]string, error) {
	var paths []string

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var car models.Car
		if err := tx.First(&car, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var images []models.CarImage
		if err := tx.Where("car_id = ?", id).Find(&images).Error; err != nil {
			return err
		}

		if car.CoverImage != "" {
			paths = append(paths, car.CoverImage)
		}
		for _, img := range images {
			paths = append(paths, img.Path)
		}

		if err := tx.Where("car_id = ?", id).Delete(&models.CarImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Car{}, id).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete car %d: %w", id, err)
	}
	return paths, nil
}

// ListImages returns a car's gallery in insertion order.
func (r *Repository) ListImages(carID uint) ([]models.CarImage, error) {
	var images []models.CarImage
	if err := r.db.Where("car_id = ?", carID).Order("id ASC").Find(&images).Error; err != nil {
		return nil, fmt.Errorf("failed to list images for car %d: %w", carID, err)
	}
	return images, nil
}

// InsertImage attaches one gallery image path to a car.
func (r *Repository) InsertImage(carID uint, path string) error {
	img := models.CarImage{CarID: carID, Path: path}
	if err := r.db.Create(&img).Error; err != nil {
		return fmt.Errorf("failed to insert image for car %d: %w", carID, err)
	}
	return nil
}

// DeleteImage removes one gallery image, returning its path for file
// cleanup. The image must belong to the stated car.
func (r *Repository) DeleteImage(imageID, carID uint) (string, error) {
	var img models.CarImage
	err := r.db.Where("id = ? AND car_id = ?", imageID, carID).First(&img).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to find image %d: %w", imageID, err)
	}

	if err := r.db.Delete(&models.CarImage{}, img.ID).Error; err != nil {
		return "", fmt.Errorf("failed to delete image %d: %w", imageID, err)
	}
	return img.Path, nil
}

// WithContext returns a repository bound to ctx.
func (r *Repository) WithContext(ctx context.Context) *Repository {
	return &Repository{db: r.db.WithContext(ctx)}
}
