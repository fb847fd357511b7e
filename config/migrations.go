package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/arslanops/api/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20240612_create_leads",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Lead{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("leads")
			},
		},
	})
	return m.Migrate()
}
