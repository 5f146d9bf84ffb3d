package infra

import (
	"fmt"

	"github.com/Vinodh8492/Micro-Dusing-V2/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// to create/update all tables. TranslateError is on so unique-constraint
// violations surface as gorm.ErrDuplicatedKey instead of raw driver errors.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// RunMigrations applies the schema. Also used by the e2e suite against a
// throwaway container database.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.StorageBucket{},
		&model.Material{},
		&model.Recipe{},
		&model.RecipeMaterial{},
		&model.ProductionOrder{},
		&model.Batch{},
		&model.BatchMaterialDispensing{},
	)
}
