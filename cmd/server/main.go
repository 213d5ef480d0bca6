// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/unclebandit/catalog-backend/internal/config"
	"github.com/unclebandit/catalog-backend/internal/controller"
	"github.com/unclebandit/catalog-backend/internal/db"
	"github.com/unclebandit/catalog-backend/internal/logger"
	"github.com/unclebandit/catalog-backend/internal/repository"
	"github.com/unclebandit/catalog-backend/internal/router"
	"github.com/unclebandit/catalog-backend/internal/service"
	"github.com/unclebandit/catalog-backend/internal/upload"
)

// Variable passed in at compile time using `-ldflags`
var (
	Version string // -X main.Version=$(git describe --tags --abbrev=0)
	GitHash string // -X main.GitHash=$(git rev-parse HEAD)
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "no .env file found, relying on OS environment variables")
	}

	app := &cli.App{
		Name:  "catalog",
		Usage: "Run the catalog API or database administration commands",
		Commands: []*cli.Command{
			{
				Name:  "version",
				Usage: "print the build version",
				Action: func(c *cli.Context) error {
					fmt.Printf("Version=%s\nCommit=%s\n", Version, GitHash)
					return nil
				},
			},
			{
				Name:    "serve",
				Aliases: []string{"s"},
				Usage:   "run server",
				Flags:   config.ServeFlags(),
				Action:  serve,
			},
			{
				Name:  "migrate",
				Usage: "create the customers and products tables",
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
					log.Info("schema ready")
					return nil
				},
			},
		},
		// serve is the default so a bare binary starts the API.
		Flags:  config.ServeFlags(),
		Action: serve,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serve(c *cli.Context) error {
	cfg := config.FromContext(c)
	log := logger.New(cfg.Environment, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.Open(ctx, cfg.DB(), log)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := db.Migrate(ctx, conn); err != nil {
		return err
	}

	store := upload.NewStore(cfg.Upload(), log)
	if err := store.EnsureDirs(); err != nil {
		return err
	}

	customerService := &service.CustomerService{
		CustomerRepo: &repository.CustomerRepository{DB: conn},
	}
	productService := &service.ProductService{
		ProductRepo: &repository.ProductRepository{DB: conn},
		Images:      store,
		Log:         log,
	}

	handler := router.New(router.Options{
		Customers: &controller.CustomerController{CustomerService: customerService, Log: log},
		Products: &controller.ProductController{
			ProductService: productService,
			Log:            log,
			MaxUploadBytes: cfg.MaxUploadBytes,
		},
		StaticDir: cfg.StaticDir,
		UploadDir: cfg.UploadDir,
		Log:       log,
	})

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Addr).Info("server running")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
		return err
	}
	return nil
}
