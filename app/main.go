package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"todo-lists/app/config"
	"todo-lists/app/controllers"
	"todo-lists/app/logging"
	"todo-lists/app/routes"
	"todo-lists/app/services"
	"todo-lists/app/sessions"
	"todo-lists/app/views"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		overrides  config.ConfigOverrides
	)

	cmd := &cobra.Command{
		Use:   "todo-lists",
		Short: "Serve session-backed todo lists over HTTP",
		Long: `todo-lists serves a small web app for keeping named todo lists.
All state lives in the visitor's session and disappears when it expires.

Configuration follows this priority order:
  command-line flags > environment variables (TODO_*) > config file > defaults`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// only flags the user actually set override lower layers
			flags := cmd.Flags()
			if !flags.Changed("addr") {
				overrides.Addr = nil
			}
			if !flags.Changed("session-backend") {
				overrides.SessionBackend = nil
			}
			if !flags.Changed("session-ttl") {
				overrides.SessionTTL = nil
			}
			if !flags.Changed("sqlite-path") {
				overrides.SQLitePath = nil
			}
			if !flags.Changed("neo4j-uri") {
				overrides.Neo4jURI = nil
			}
			if !flags.Changed("log-level") {
				overrides.LogLevel = nil
			}
			if !flags.Changed("log-format") {
				overrides.LogFormat = nil
			}

			cfg, err := config.NewLoader().Load(configPath, &overrides)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "path to a TOML config file")
	overrides.Addr = flags.String("addr", "", "listen address")
	overrides.SessionBackend = flags.String("session-backend", "", "session store: memory, sqlite or neo4j")
	overrides.SessionTTL = flags.Duration("session-ttl", 0, "session lifetime")
	overrides.SQLitePath = flags.String("sqlite-path", "", "SQLite session database path")
	overrides.Neo4jURI = flags.String("neo4j-uri", "", "Neo4j connection URI")
	overrides.LogLevel = flags.String("log-level", "", "log level: debug, info, warn or error")
	overrides.LogFormat = flags.String("log-format", "", "log format: text, json or logfmt")

	return cmd
}

func run(parent context.Context, cfg *config.Config) error {
	logger := logging.New(cfg.Log)

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize the session store
	store, err := config.CreateSessionStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	key, err := cfg.SecretKey()
	if err != nil {
		return err
	}
	manager := sessions.NewManager(store, sessions.Options{
		CookieName: cfg.Session.CookieName,
		HashKey:    key,
		TTL:        cfg.Session.TTL.Duration,
	}, logger)
	go manager.Reap(ctx, cfg.Session.ReapInterval.Duration)

	renderer, err := views.New()
	if err != nil {
		return err
	}

	// Initialize the controller layer
	controller := controllers.NewController(services.NewTodoStore(), renderer, logger)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      routes.NewRouter(controller, manager, logger),
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server is running", "addr", cfg.Server.Addr, "sessions", cfg.Session.Backend)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
