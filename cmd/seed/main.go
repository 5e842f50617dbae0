package main

import (
	"context"
	"log"
	"time"

	"job_hunter/internal/config"
	actionadapters "job_hunter/internal/feature/actions/adapters"
	actionusecase "job_hunter/internal/feature/actions/usecase"
	platformdb "job_hunter/internal/platform/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db := platformdb.OpenDB(cfg)
	if err := platformdb.Migrate(db); err != nil {
		log.Fatal("failed to migrate:", err)
	}

	templateRepo := actionadapters.NewTemplateGorm(db)
	uc := actionusecase.NewTemplateUsecase(templateRepo)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := uc.Seed(ctx)
	if err != nil {
		log.Fatal("template seeding failed:", err)
	}
	if n == 0 {
		log.Println("template catalog already seeded")
		return
	}
	log.Printf("seeded %d action templates", n)
}
