// internal/config/config.go
package config

import (
	"github.com/urfave/cli/v2"

	"github.com/unclebandit/catalog-backend/internal/db"
	"github.com/unclebandit/catalog-backend/internal/upload"
)

const envPrefix = "CATALOG"

type Config struct {
	Addr        string
	Environment string
	LogLevel    string

	DatabaseHost    string
	DatabasePort    string
	DatabaseUser    string
	DatabasePass    string
	DatabaseName    string
	DatabaseSSLMode string

	StaticDir      string
	UploadDir      string
	MaxUploadBytes int64
}

// DatabaseFlags are shared by every command that talks to Postgres.
func DatabaseFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "database_host", Value: "localhost", EnvVars: []string{envPrefix + "_DATABASE_HOST", "DB_HOST"}, Usage: "The database host"},
		&cli.StringFlag{Name: "database_port", Value: "5432", EnvVars: []string{envPrefix + "_DATABASE_PORT", "DB_PORT"}, Usage: "The database port"},
		&cli.StringFlag{Name: "database_user", Value: "postgres", EnvVars: []string{envPrefix + "_DATABASE_USER", "DB_USER"}, Usage: "The database user"},
		&cli.StringFlag{Name: "database_pass", Value: "postgres", EnvVars: []string{envPrefix + "_DATABASE_PASS", "DB_PASSWORD"}, Usage: "The database pass"},
		&cli.StringFlag{Name: "database_name", Value: "catalog", EnvVars: []string{envPrefix + "_DATABASE_NAME", "DB_NAME"}, Usage: "The database name"},
		&cli.StringFlag{Name: "database_sslmode", Value: "disable", EnvVars: []string{envPrefix + "_DATABASE_SSLMODE", "DB_SSLMODE"}, Usage: "The lib/pq sslmode"},
		&cli.StringFlag{Name: "environment", Value: "development", EnvVars: []string{envPrefix + "_ENVIRONMENT", "ENVIRONMENT"}, Usage: "This program environment (development, staging, production), it sets the log format"},
		&cli.StringFlag{Name: "log_level", Value: "info", EnvVars: []string{envPrefix + "_LOG_LEVEL", "LOG_LEVEL"}, Usage: "Set the log level for logrus (panic, fatal, error, warn, info, debug, trace)"},
	}
}

// ServeFlags are the flags of the serve command.
func ServeFlags() []cli.Flag {
	return append(DatabaseFlags(),
		&cli.StringFlag{Name: "api_addr", Value: ":5000", EnvVars: []string{envPrefix + "_API_ADDR", "API_ADDR"}, Usage: "host:port to run the API"},
		&cli.StringFlag{Name: "static_dir", Value: "./static", EnvVars: []string{envPrefix + "_STATIC_DIR"}, Usage: "Directory holding the built frontend"},
		&cli.StringFlag{Name: "upload_dir", Value: "./static/uploads", EnvVars: []string{envPrefix + "_UPLOAD_DIR"}, Usage: "Directory product images are written to"},
		&cli.Int64Flag{Name: "max_upload_bytes", Value: 16 << 20, EnvVars: []string{envPrefix + "_MAX_UPLOAD_BYTES"}, Usage: "Largest accepted request body for product forms"},
	)
}

// FromContext reads whichever of the flags above the command declared.
func FromContext(c *cli.Context) Config {
	return Config{
		Addr:            c.String("api_addr"),
		Environment:     c.String("environment"),
		LogLevel:        c.String("log_level"),
		DatabaseHost:    c.String("database_host"),
		DatabasePort:    c.String("database_port"),
		DatabaseUser:    c.String("database_user"),
		DatabasePass:    c.String("database_pass"),
		DatabaseName:    c.String("database_name"),
		DatabaseSSLMode: c.String("database_sslmode"),
		StaticDir:       c.String("static_dir"),
		UploadDir:       c.String("upload_dir"),
		MaxUploadBytes:  c.Int64("max_upload_bytes"),
	}
}

func (c Config) DB() db.Config {
	return db.Config{
		Host:     c.DatabaseHost,
		Port:     c.DatabasePort,
		User:     c.DatabaseUser,
		Password: c.DatabasePass,
		Name:     c.DatabaseName,
		SSLMode:  c.DatabaseSSLMode,
	}
}

func (c Config) Upload() upload.Config {
	return upload.Config{Root: c.UploadDir}
}
