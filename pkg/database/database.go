package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/d60-Lab/microblog/config"
	"github.com/d60-Lab/microblog/internal/model"
)

// InitDB opens the configured database and migrates the schema.
// TranslateError is on so unique-constraint violations surface as
// gorm.ErrDuplicatedKey on both drivers.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Database.Driver {
	case "postgres":
		db, err = gorm.Open(postgres.Open(cfg.Database.DSN), gormCfg)
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.Database.DSN), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate applies the schema for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Password{},
		&model.Follow{},
		&model.Tweet{},
	)
}
