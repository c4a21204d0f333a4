package database

import (
	"fmt"
	"time"

	"dealspace-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	AutoMigrate     bool
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}
	if !opts.AutoMigrate {
		opts.AutoMigrate = true
	}

	// Open DB
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// Ensure required extension for UUID generation (used by BaseModel default gen_random_uuid())
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	// Parents before children so foreign keys resolve
	if opts.AutoMigrate {
		all := []interface{}{
			&models.Tenant{},
			&models.User{},
			&models.Stage{},
			&models.Person{},
			&models.Email{},
			&models.Phone{},
			&models.Address{},
			&models.Tag{},
			&models.Collaborator{},
			&models.File{},
			&models.Pond{},
			&models.Group{},
			&models.GroupMember{},
			&models.LeadFlowRule{},
		}
		if err := db.AutoMigrate(all...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}

		// At most one primary contact point per person
		for _, table := range []string{models.Email{}.TableName(), models.Phone{}.TableName(), models.Address{}.TableName()} {
			stmt := fmt.Sprintf(`CREATE UNIQUE INDEX IF NOT EXISTS idx_%s_one_primary ON %s (person_id) WHERE is_primary`, table, table)
			if err := db.Exec(stmt).Error; err != nil {
				return nil, fmt.Errorf("create primary index on %s: %w", table, err)
			}
		}
	}

	return db, nil
}
