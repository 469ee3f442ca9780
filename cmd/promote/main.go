// Command promote approves a registered profile as a manager (gestor).
// It bootstraps the first manager, who can then admit everyone else
// through the admin API.
//
// Usage:
//
//	promote --email=user@example.com
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/peritagem-backend/internal/adapter/postgres"
	"github.com/heartmarshall/peritagem-backend/internal/adapter/postgres/profile"
	"github.com/heartmarshall/peritagem-backend/internal/app"
	"github.com/heartmarshall/peritagem-backend/internal/config"
	"github.com/heartmarshall/peritagem-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the profile to promote")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log, os.Stderr)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	repo := profile.New(pool)

	p, err := repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(*email)))
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Printf("No profile found with email %q.\n", *email)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("lookup profile: %v", err)
	}

	if p.Role == domain.RoleManager && p.Status == domain.ProfileStatusApproved {
		fmt.Printf("Profile %q is already an approved manager.\n", *email)
		return
	}

	role := domain.RoleManager
	status := domain.ProfileStatusApproved
	if _, err := repo.Update(ctx, p.ID, domain.ProfileUpdateParams{Role: &role, Status: &status}); err != nil {
		log.Fatalf("update profile: %v", err)
	}

	fmt.Printf("Profile %q promoted to approved manager.\n", *email)
}
