package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/quintle/quintle/internal/config"
	"github.com/quintle/quintle/internal/db"
	"github.com/quintle/quintle/internal/httpserver"
	"github.com/quintle/quintle/internal/store"
	"github.com/quintle/quintle/internal/words"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP game server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := words.Init(); err != nil {
		return fmt.Errorf("load word lists: %w", err)
	}
	answers, allowed := words.Stats()
	log.Info().Int("answers", answers).Int("allowed", allowed).Msg("word lists loaded")

	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer conn.Close()
	if err := db.Migrate(conn); err != nil {
		return fmt.Errorf("migrate db: %w", err)
	}

	srv := httpserver.New(cfg, store.NewMemoryStore(), conn)
	httpSrv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		log.Info().Msg("shutdown signal received")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(ctx); err != nil {
			log.Warn().Err(err).Msg("http server shutdown")
		}
		close(idleConnsClosed)
	}()

	log.Info().Str("port", cfg.Port).Msg("starting quintle server")
	if err := httpSrv.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("server exited: %w", err)
	}
	<-idleConnsClosed
	log.Info().Msg("server shutdown complete")
	return nil
}
