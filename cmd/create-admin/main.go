// Command create-admin provisions an administrator account. Registration
// through the API can only create regular roles, so the first admin has to
// be bootstrapped out of band.
//
// Usage:
//
//	create-admin -email admin@example.com -password secret [-first Ada] [-last Lovelace]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/homefax/homefax-backend/internal/adapter/postgres"
	userrepo "github.com/homefax/homefax-backend/internal/adapter/postgres/user"
	"github.com/homefax/homefax-backend/internal/app"
	authpkg "github.com/homefax/homefax-backend/internal/auth"
	"github.com/homefax/homefax-backend/internal/config"
	"github.com/homefax/homefax-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "admin email (required)")
	password := flag.String("password", "", "admin password (required)")
	first := flag.String("first", "Admin", "first name")
	last := flag.String("last", "", "last name")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	hasher := authpkg.NewPasswordHasher(cfg.Auth.PasswordHashCost)
	hash, err := hasher.Hash(*password)
	if err != nil {
		logger.Error("hash password", slog.String("error", err.Error()))
		os.Exit(1)
	}

	users := userrepo.New(pool)
	u, err := users.Create(ctx, &domain.User{
		Email:        *email,
		PasswordHash: hash,
		Role:         domain.UserRoleAdmin,
		FirstName:    *first,
		LastName:     *last,
		IsActive:     true,
	})
	if err != nil {
		logger.Error("create admin", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("Created admin %s (%s)\n", u.Email, u.ID)
}
