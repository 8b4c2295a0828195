package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fguardian/backend/internal/auth"
	"github.com/fguardian/backend/internal/config"
	v1 "github.com/fguardian/backend/internal/controllers/v1"
	"github.com/fguardian/backend/internal/models"
	"github.com/fguardian/backend/internal/router"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	shutdownTimeout = 10 * time.Second
	sessionCleanup  = time.Hour
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.RunE = runServe
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(cfg.DatabasePath), os.ModePerm)
	if err != nil {
		return err
	}

	err = models.Connect(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer func() {
		if err := models.Close(); err != nil {
			log.Error().Err(err).Msg("closing the database")
		}
	}()

	r, teardown, err := router.Config(cfg.APIURL)
	defer teardown()
	if err != nil {
		return err
	}

	co := v1.NewController(auth.NewHTTPProvider(cfg.AuthSessionURL), cfg.SessionTTL, cfg.ReportCacheTTL)
	router.AttachRoutes(co, r.Group(cfg.APIURL.Path), cfg.AuthRateLimit)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go cleanupSessions(ctx, sessionCleanup)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("backend startup complete")
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info().Msg("backend shut down")
	return nil
}

// cleanupSessions deletes expired sessions in the interval until the
// context is done.
func cleanupSessions(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			deleted, err := auth.DeleteExpired(models.DB, now)
			if err != nil {
				log.Error().Err(err).Msg("deleting expired sessions")
				continue
			}

			if deleted > 0 {
				log.Debug().Int64("deleted", deleted).Msg("expired sessions")
			}
		}
	}
}
