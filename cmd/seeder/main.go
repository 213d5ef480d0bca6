// cmd/seeder/main.go
package main

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/unclebandit/catalog-backend/internal/config"
	"github.com/unclebandit/catalog-backend/internal/db"
	"github.com/unclebandit/catalog-backend/internal/logger"
)

//go:embed seed/*.sql
var seedSQL embed.FS

var seedFiles = []string{
	"seed/customers.sql",
	"seed/products.sql",
}

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "no .env file found, relying on OS environment variables")
	}

	app := &cli.App{
		Name:  "seeder",
		Usage: "seed the database with sample customers and products",
		Flags: config.DatabaseFlags(),
		Action: func(c *cli.Context) error {
			cfg := config.FromContext(c)
			log := logger.New(cfg.Environment, cfg.LogLevel)

			conn, err := db.Open(c.Context, cfg.DB(), log)
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := db.Migrate(c.Context, conn); err != nil {
				return err
			}
			if err := seed(c.Context, conn, seedSQL, seedFiles, log); err != nil {
				return err
			}
			log.Info("database seeding completed successfully")
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// seed executes each file in order. The files guard themselves against
// inserting twice.
func seed(ctx context.Context, conn *sql.DB, fsys fs.FS, files []string, log logrus.FieldLogger) error {
	for _, file := range files {
		content, err := fs.ReadFile(fsys, file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		if _, err := conn.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("failed to execute %s: %w", file, err)
		}
		log.WithField("file", file).Info("seeded")
	}
	return nil
}
