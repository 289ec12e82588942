package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/profilkantor/profile-api/internal/config"
	"github.com/profilkantor/profile-api/internal/logger"
	"github.com/profilkantor/profile-api/migrations"
	"go.uber.org/zap"
)

const usage = "usage: migrate [-dir path] [up|up-to VERSION|down|down-to VERSION|redo|reset|status|version|create NAME]"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Migration error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dir := flag.String("dir", "", "read migrations from this directory instead of the embedded set")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		return fmt.Errorf(usage)
	}
	command, arguments := args[0], args[1:]

	// create only writes a file; it needs neither config nor a connection
	if command == "create" {
		if len(arguments) == 0 {
			return fmt.Errorf("create requires a migration name")
		}
		target := *dir
		if target == "" {
			target = "./migrations"
		}
		if err := goose.Create(nil, target, arguments[0], "sql"); err != nil {
			return fmt.Errorf("failed to create migration: %w", err)
		}
		fmt.Printf("Migration created: %s\n", arguments[0])
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	// Database credentials may live in Key Vault
	cfg, err = config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	db, err := sql.Open("postgres", cfg.Database.ConnectionString())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	migrationsDir := "."
	if *dir != "" {
		goose.SetBaseFS(nil)
		migrationsDir = *dir
	} else {
		goose.SetBaseFS(migrations.FS)
	}
	if err := checkMigrations(*dir); err != nil {
		return err
	}

	log.Info("Running migration command",
		zap.String("command", command),
		zap.String("database", cfg.Database.Name),
		zap.String("source", sourceName(*dir)),
	)

	switch command {
	case "up":
		if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
			return fmt.Errorf("failed to run up migrations: %w", err)
		}
		fmt.Println("Migrations applied successfully")

	case "up-to", "down-to":
		version, err := parseVersion(arguments)
		if err != nil {
			return err
		}
		if command == "up-to" {
			err = goose.UpToContext(ctx, db, migrationsDir, version)
		} else {
			err = goose.DownToContext(ctx, db, migrationsDir, version)
		}
		if err != nil {
			return fmt.Errorf("failed to migrate to version %d: %w", version, err)
		}
		fmt.Printf("Migrated to version %d\n", version)

	case "down":
		if err := goose.DownContext(ctx, db, migrationsDir); err != nil {
			return fmt.Errorf("failed to run down migration: %w", err)
		}
		fmt.Println("Migration rolled back successfully")

	case "redo":
		if err := goose.RedoContext(ctx, db, migrationsDir); err != nil {
			return fmt.Errorf("failed to redo migration: %w", err)
		}
		fmt.Println("Latest migration re-applied")

	case "reset":
		if cfg.App.IsProduction() {
			return fmt.Errorf("reset is disabled in production")
		}
		if err := goose.ResetContext(ctx, db, migrationsDir); err != nil {
			return fmt.Errorf("failed to reset migrations: %w", err)
		}
		fmt.Println("All migrations rolled back")

	case "status":
		if err := goose.StatusContext(ctx, db, migrationsDir); err != nil {
			return fmt.Errorf("failed to get migration status: %w", err)
		}

	case "version":
		if err := goose.VersionContext(ctx, db, migrationsDir); err != nil {
			return fmt.Errorf("failed to get version: %w", err)
		}

	default:
		return fmt.Errorf("unknown command: %s\n%s", command, usage)
	}

	return nil
}

func parseVersion(arguments []string) (int64, error) {
	if len(arguments) == 0 {
		return 0, fmt.Errorf("a target version is required")
	}
	version, err := strconv.ParseInt(arguments[0], 10, 64)
	if err != nil || version < 0 {
		return 0, fmt.Errorf("invalid version %q", arguments[0])
	}
	return version, nil
}

func checkMigrations(dir string) error {
	var (
		matches []string
		err     error
	)
	if dir == "" {
		matches, err = fs.Glob(migrations.FS, "*.sql")
	} else {
		matches, err = fs.Glob(os.DirFS(dir), "*.sql")
	}
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no migrations found in %s", sourceName(dir))
	}
	return nil
}

func sourceName(dir string) string {
	if dir == "" {
		return "embedded"
	}
	return dir
}
