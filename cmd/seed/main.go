package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/spyojana/subsidy-portal/internal/core/domain"
	"github.com/spyojana/subsidy-portal/internal/infra/config"
	"github.com/spyojana/subsidy-portal/internal/infra/database"
	"github.com/spyojana/subsidy-portal/internal/infra/logger"
	"github.com/spyojana/subsidy-portal/internal/infra/security"
	"github.com/spyojana/subsidy-portal/internal/repository"
	postgresrepo "github.com/spyojana/subsidy-portal/internal/repository/postgres"
)

const (
	adminEmail    = "admin@spyojana.com"
	adminPassword = "admin123"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.App.Env)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() {
		_ = zlog.Sync()
	}()

	if err := database.Migrate(cfg.Postgres, zlog); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg.Postgres, zlog)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	repos := postgresrepo.NewRepositories(pool)

	if err := seedAdmin(ctx, repos); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	if err := seedApplications(ctx, repos); err != nil {
		log.Fatalf("failed to seed applications: %v", err)
	}

	log.Println("seed complete")
	log.Printf("admin credentials: %s / %s", adminEmail, adminPassword)
}

func seedAdmin(ctx context.Context, repos *postgresrepo.Repositories) error {
	if _, err := repos.Users.GetByEmail(ctx, adminEmail); err == nil {
		log.Printf("admin %s already exists, skipping", adminEmail)
		return nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hash, err := security.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	return repos.Users.Create(ctx, domain.User{
		ID:           uuid.NewString(),
		Email:        adminEmail,
		PasswordHash: hash,
		Name:         "Admin User",
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
}

func seedApplications(ctx context.Context, repos *postgresrepo.Repositories) error {
	existing, err := repos.Applications.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Printf("%d applications already present, skipping samples", len(existing))
		return nil
	}

	samples := []domain.Application{
		{
			FullName:     "Ramesh Kumar Singh",
			FatherName:   "Shyam Singh",
			Village:      "Bhagwanpur",
			District:     "Varanasi",
			State:        "Uttar Pradesh",
			Mobile:       "9876543210",
			AadharNumber: "123456789012",
			Status:       domain.StatusPending,
		},
		{
			FullName:     "Suresh Yadav",
			FatherName:   "Krishna Yadav",
			Village:      "Rajpur",
			District:     "Patna",
			State:        "Bihar",
			Mobile:       "9876543211",
			AadharNumber: "234567890123",
			Status:       domain.StatusApproved,
		},
		{
			FullName:     "Mahesh Sharma",
			FatherName:   "Gopal Sharma",
			Village:      "Chandpur",
			District:     "Jaipur",
			State:        "Rajasthan",
			Mobile:       "9876543212",
			AadharNumber: "345678901234",
			Status:       domain.StatusPending,
		},
		{
			FullName:     "Dinesh Patel",
			FatherName:   "Ratan Patel",
			Village:      "Gandhinagar",
			District:     "Ahmedabad",
			State:        "Gujarat",
			Mobile:       "9876543213",
			AadharNumber: "456789012345",
			Status:       domain.StatusReviewed,
		},
		{
			FullName:     "Rajendra Gupta",
			FatherName:   "Hari Gupta",
			Village:      "Lucknow",
			District:     "Lucknow",
			State:        "Uttar Pradesh",
			Mobile:       "9876543214",
			AadharNumber: "567890123456",
			Status:       domain.StatusRejected,
		},
	}

	now := time.Now().UTC()
	for i, app := range samples {
		app.ID = uuid.NewString()
		// Stagger timestamps so the dashboard ordering is deterministic.
		app.CreatedAt = now.Add(time.Duration(i-len(samples)) * time.Minute)
		if err := repos.Applications.Create(ctx, app); err != nil {
			return err
		}
	}

	log.Printf("created %d sample applications", len(samples))
	return nil
}
