package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fernandozarate/portfolio/internal/config"
	"github.com/fernandozarate/portfolio/internal/cv"
	"github.com/fernandozarate/portfolio/internal/logging"
	"github.com/fernandozarate/portfolio/internal/metrics"
	"github.com/fernandozarate/portfolio/internal/portfolio"
	"github.com/fernandozarate/portfolio/internal/store"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.New()

	root := &cobra.Command{
		Use:          "portfolio",
		Short:        "Serve the portfolio page",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
	root.PersistentFlags().String("db", "", "sqlite database path (overrides PORTFOLIO_DB_PATH)")
	root.Flags().String("addr", "", "listen address (overrides PORTFOLIO_ADDR)")
	_ = v.BindPFlag("db_path", root.PersistentFlags().Lookup("db"))
	_ = v.BindPFlag("addr", root.Flags().Lookup("addr"))

	root.AddCommand(&cobra.Command{
		Use:   "export-stats",
		Short: "Print visitor statistics as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return exportStats(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	})
	return root
}

func serve(ctx context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	gin.SetMode(cfg.GinMode)
	log := logging.New(os.Stderr, cfg.LogLevel, gin.Mode() == gin.DebugMode)
	zerolog.DefaultContextLogger = &log

	st, err := store.Open(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	m := metrics.New()
	loader := newCVLoader(cfg, log, m)
	content := portfolio.NewService(portfolio.Default(cfg.ContactEmail))

	s, err := newServer(cfg, log, content, loader, st, m)
	if err != nil {
		return err
	}

	cleanup, err := s.scheduleCleanup(ctx)
	if err != nil {
		return fmt.Errorf("cleanup schedule %q: %w", cfg.CleanupSchedule, err)
	}
	defer cleanup.Stop()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("Portfolio listening")
		errCh <- srv.ListenAndServe()
	}()

	// The CV is requested once the page can be served, like a page fetching it on first display.
	loader.Start(ctx)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newCVLoader(cfg *config.Config, log zerolog.Logger, m *metrics.Metrics) *cv.Loader {
	var fetcher cv.Fetcher = cv.DirFetcher{FS: staticFiles()}
	if !cfg.EmbeddedCV() {
		fetcher = cv.HTTPFetcher{BaseURL: cfg.CVSource}
	}
	return cv.NewLoader(fetcher,
		cv.WithPath(cfg.CVPath),
		cv.WithLogger(log.With().Str("component", "cv").Logger()),
		cv.OnDone(m.ObserveCVFetch))
}

func exportStats(ctx context.Context, cfg *config.Config, w io.Writer) error {
	st, err := store.Open(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	stats, err := st.Stats(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(stats)
}
