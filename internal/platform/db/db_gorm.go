// Package db opens the GORM database connection used by every repository.
package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"job_hunter/internal/config"
	actionentity "job_hunter/internal/feature/actions/domain/entity"
	authentity "job_hunter/internal/feature/auth/domain/entity"
	companyentity "job_hunter/internal/feature/companies/domain/entity"
	jobentity "job_hunter/internal/feature/jobs/domain/entity"
)

// OpenDB connects to Postgres, retrying for up to a minute so the server
// survives a database that comes up slower than the process.
func OpenDB(cfg *config.Config) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(postgres.Open(cfg.DB.DSN()), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		if err := Migrate(db); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&authentity.User{},
		&jobentity.Job{},
		&actionentity.ActionTemplate{},
		&actionentity.Action{},
		&companyentity.Company{},
	)
}
