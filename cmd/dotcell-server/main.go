package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/y-okubo/dotcell/internal/assets"
	"github.com/y-okubo/dotcell/internal/bootstrap"
	"github.com/y-okubo/dotcell/internal/config"
	"github.com/y-okubo/dotcell/internal/database"
	"github.com/y-okubo/dotcell/internal/history"
	"github.com/y-okubo/dotcell/internal/inference"
	"github.com/y-okubo/dotcell/internal/inference/openai"
	"github.com/y-okubo/dotcell/internal/lesson"
	"github.com/y-okubo/dotcell/internal/server"
	"github.com/y-okubo/dotcell/internal/tutor"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "dotcell-server",
		Short:         "Braille tutoring HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	app := bootstrap.New()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	var client inference.Client
	if cfg.OpenAI.APIKey != "" {
		openaiClient := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.MaxRetryAttempts)
		app.OnShutdown(func(ctx context.Context) error {
			return openaiClient.Close()
		})
		client = openaiClient
		log.Printf("Inference enabled (model: %s)", openaiClient.GetModel())
	} else {
		log.Printf("Warning: OPENAI_API_KEY is not set. Using fallback responses.")
	}
	composer := tutor.NewComposer(client, slog.Default())

	var historyRepo history.Repository
	if cfg.Database.Enabled() {
		db, err := database.Open(cfg.Database)
		if err != nil {
			return fmt.Errorf("database.Open() > %w", err)
		}
		app.OnShutdown(func(ctx context.Context) error {
			return db.Close()
		})
		if err := database.Migrate(ctx, db); err != nil {
			return fmt.Errorf("database.Migrate() > %w", err)
		}
		historyRepo = history.NewDBRepository(db)
	}

	lessons, err := lesson.ReadLessons(cfg.Lessons.Directory)
	if err != nil {
		return fmt.Errorf("lesson.ReadLessons(%s) > %w", cfg.Lessons.Directory, err)
	}

	frontend, err := assets.Frontend(cfg.Frontend.Directory)
	if err != nil {
		return fmt.Errorf("assets.Frontend() > %w", err)
	}

	handler := server.NewHandler(composer, lessons, historyRepo, slog.Default())
	mux := http.NewServeMux()
	handler.Register(mux, frontend)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.CORSMiddleware(h2c.NewHandler(mux, &http2.Server{}), cfg.Server.CORS.AllowedOrigins),
	}
	app.OnShutdown(srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		log.Printf("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}
