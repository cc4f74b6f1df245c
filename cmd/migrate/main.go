// Command migrate creates the ledger schema, loads the fixed lookup sets,
// and seeds a first owner account so the API is usable right after setup.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"ledger/config"
	"ledger/internal/domain/entity"
	"ledger/internal/infra/auth"
	"ledger/internal/infra/persistence/model"
	"ledger/internal/infra/persistence/postgres"

	pgLib "github.com/slighter12/go-lib/database/postgres"
)

const (
	ownerUsernameEnv = "LEDGER_OWNER_USERNAME"
	ownerPasswordEnv = "LEDGER_OWNER_PASSWORD"

	defaultOwnerUsername = "owner"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(logger); err != nil {
		logger.Error("migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}

	logger.Info("migrating schema")
	if err := postgres.Migrate(db); err != nil {
		return err
	}

	logger.Info("seeding reference data")
	if err := postgres.SeedReferenceData(db); err != nil {
		return err
	}

	password := os.Getenv(ownerPasswordEnv)
	if password == "" {
		logger.Info("owner password env not set, skipping owner seed",
			slog.String("env", ownerPasswordEnv))

		return nil
	}

	username := os.Getenv(ownerUsernameEnv)
	if username == "" {
		username = defaultOwnerUsername
	}

	hasher := auth.NewPasswordHasher(cfg)
	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash owner password: %w", err)
	}

	logger.Info("seeding owner account", slog.String("username", username))

	return postgres.SeedUser(db, &model.UserModel{
		Username:  username,
		Password:  hash,
		FirstName: "Dealership",
		LastName:  "Owner",
		Role:      entity.RoleOwner.String(),
	})
}
