package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/hostmail-io/hostmail/internal/infrastructure/config"
	"github.com/hostmail-io/hostmail/internal/infrastructure/database"
	"github.com/hostmail-io/hostmail/internal/infrastructure/migration"
	httpServer "github.com/hostmail-io/hostmail/internal/interfaces/http"
	"github.com/hostmail-io/hostmail/internal/shared/biztime"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the HostMail HTTP server with the configured database, redis, and background services.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := biztime.Init(cfg.Business.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	log.Infow("starting server", "environment", env)

	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if autoMigrate {
		if err := migration.NewManager(log).Migrate(database.Get()); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	container, err := httpServer.NewContainer(cfg, database.Get(), log)
	if err != nil {
		return fmt.Errorf("failed to build container: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serveErr := container.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		if err != nil {
			log.Errorw("server failed", "error", err)
		}
	case sig := <-quit:
		log.Infow("shutting down", "signal", sig.String())
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := container.Shutdown(shutdownCtx); err != nil {
		log.Errorw("shutdown incomplete", "error", err)
		return err
	}

	log.Infow("server stopped")
	return nil
}
