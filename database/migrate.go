package database

import (
	"fmt"
	"time"

	"carlot/database/models"

	"gorm.io/gorm"
)

// Migration is one ordered schema change. Migrations are additive only:
// they never drop or rename existing columns.
type Migration struct {
	ID    string
	Apply func(tx *gorm.DB) error
}

type schemaMigration struct {
	ID        string    `gorm:"primaryKey;size:64"`
	AppliedAt time.Time `gorm:"autoCreateTime"`
}

func (schemaMigration) TableName() string {
	return "schema_migrations"
}

// migrations is the full ordered list. New entries go at the end.
var migrations = []Migration{
	{
		ID: "001_create_core_tables",
		Apply: func(tx *gorm.DB) error {
			return tx.Migrator().AutoMigrate(
				&models.Car{},
				&models.CarImage{},
			)
		},
	},
	{
		ID: "002_create_sessions",
		Apply: func(tx *gorm.DB) error {
			return tx.Migrator().AutoMigrate(&models.Session{})
		},
	},
	{
		ID: "003_add_car_detail_columns",
		Apply: func(tx *gorm.DB) error {
			// Columns added after the first release; nullable so older rows
			// stay valid. AutoMigrate on the model only ever adds.
			return tx.Migrator().AutoMigrate(&models.Car{})
		},
	},
}

// Migrate applies every pending migration once, in order, and records each
// in schema_migrations. Returns the number applied.
func Migrate(db *gorm.DB) (int, error) {
	if err := db.AutoMigrate(&schemaMigration{}); err != nil {
		return 0, fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	applied := 0
	for _, m := range migrations {
		var count int64
		if err := db.Model(&schemaMigration{}).Where("id = ?", m.ID).Count(&count).Error; err != nil {
			return applied, fmt.Errorf("failed to check migration %s: %w", m.ID, err)
		}
		if count > 0 {
			continue
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.Apply(tx); err != nil {
				return err
			}
			return tx.Create(&schemaMigration{ID: m.ID}).Error
		})
		if err != nil {
			return applied, fmt.Errorf("migration %s failed: %w", m.ID, err)
		}
		applied++
	}

	return applied, nil
}
