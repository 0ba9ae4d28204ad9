package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net"

	"hotelops/config"
	"hotelops/infras/postgres"
	"hotelops/shared/constant"
	"hotelops/shared/password"
	"hotelops/shared/timezone"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	connectionString := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s&x-migrations-table=%s",
		config.DB.Postgres.Write.Username,
		config.DB.Postgres.Write.Password,
		net.JoinHostPort(config.DB.Postgres.Write.Host, config.DB.Postgres.Write.Port),
		config.DB.Postgres.Write.Name,
		config.DB.Postgres.Write.SSLMode,
		config.DB.Postgres.MigrationTable,
	)

	mig, err := migrate.New(
		"file://migrations/postgres",
		connectionString,
	)

	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(config *config.Config, action string) error {
	mig, err := getConnection(config)
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	switch action {
	case "up":
		if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Msg("Database migrations completed successfully")

		return nil
	case "down":
		if err := mig.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Database migrations rolled back successfully")

		return nil
	case "step-up":
		if err := mig.Steps(1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Msg("Database migrations completed successfully")

		return nil
	case "drop":
		if err := mig.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Database migrations rolled back successfully")

		return nil
	}

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, "up")
}

func StepUp(config *config.Config) error {
	return Runner(config, "step-up")
}

func Down(config *config.Config) error {
	return Runner(config, "down")
}

func Drop(config *config.Config) error {
	return Runner(config, "drop")
}

// Seed inserts the bootstrap admin account so a fresh deployment has one
// login to create everything else with. The password is hashed here, never
// stored in configuration beyond process start, and an existing account with
// the same email is left untouched.
func Seed(config *config.Config) error {
	if config.Seed.AdminPassword == "" {
		return errors.New("SEED_ADMIN_PASSWORD is required to seed the admin account")
	}

	hashed, err := password.Hash(config.Seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("error hashing admin password: %w", err)
	}

	connection := postgres.New(config)

	defer connection.Write.Close()

	now := timezone.Now()

	_, err = connection.Write.Exec(
		`INSERT INTO users (email, hashed_password, first_name, last_name, role, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, TRUE, $6, $6)
		 ON CONFLICT (email) DO NOTHING`,
		config.Seed.AdminEmail, hashed, "System", "Administrator", constant.RoleAdmin, now,
	)
	if err != nil {
		return fmt.Errorf("error seeding admin account: %w", err)
	}

	log.Info().Str("email", config.Seed.AdminEmail).Msg("Admin account seeded")

	return nil
}
