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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jacksmith/taskd/internal/api"
	"github.com/jacksmith/taskd/internal/config"
	"github.com/jacksmith/taskd/internal/logger"
	"github.com/jacksmith/taskd/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the task API server",
	Long: `Start the HTTP API on the configured port.

Configuration is assembled from defaults, an optional taskd.yaml in the
working directory, environment variables (TASKD_PORT, TASKD_DB_PATH),
and finally command-line flags. A .env file is loaded if present.`,
	RunE: runServe,
}

var (
	servePort int
	serveDB   string
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on")
	serveCmd.Flags().StringVar(&serveDB, "db", "", "path to the task database file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// A missing .env file is fine; env vars still apply.
	_ = godotenv.Load()
	logger.Init()

	cfg := config.NewConfig()
	if err := cfg.LoadFile(config.DefaultFile); err != nil {
		return err
	}
	cfg.LoadFromEnvironment()
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveDB != "" {
		cfg.DBPath = serveDB
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if _, exists := os.LookupEnv("DEBUG"); !exists {
		gin.SetMode(gin.ReleaseMode)
	}

	store := storage.NewFileStore(cfg.DBPath)
	server := api.NewServer(store)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: server.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("taskd %s listening on port %d (db: %s)", Version, cfg.Port, cfg.DBPath)
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-stop:
		logger.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
	}

	return nil
}
