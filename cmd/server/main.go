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

	"github.com/urfave/cli/v3"

	"github.com/logmycode/logmycode/internal/server"
	"github.com/logmycode/logmycode/internal/transport/http/router"
	"github.com/logmycode/logmycode/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cmd := &cli.Command{
		Name:  "logmycode-server",
		Usage: "LogMyCode backend API",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API server",
				Action: runServe,
			},
			{
				Name:   "migrate",
				Usage:  "Run database migrations and exit",
				Action: runMigrate,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func runServe(ctx context.Context, _ *cli.Command) error {
	s := server.New()
	initLogging(s)
	defer logger.SyncGlobal()

	// schema is kept current on startup, same as the migrate command
	if err := s.DB.RunMigrations(); err != nil {
		return err
	}

	r := router.NewRouter(s)
	r.RegisterRoutes()

	srv := &http.Server{
		Addr:    s.Config.ServerAddress(),
		Handler: s.Engine,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logger.Info("Server listening", logger.String("addr", srv.Addr))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-stop:
		logger.Info("Shutting down", logger.String("signal", sig.String()))
		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	return s.DB.Close()
}

func runMigrate(_ context.Context, _ *cli.Command) error {
	s := server.New()
	initLogging(s)
	defer logger.SyncGlobal()

	if err := s.DB.RunMigrations(); err != nil {
		return err
	}
	return s.DB.Close()
}

func initLogging(s *server.Server) {
	err := logger.Init(&logger.Config{
		Level:       s.Config.Logging.Level,
		Format:      s.Config.Logging.Format,
		OutputPath:  s.Config.Logging.OutputPath,
		Development: s.Config.IsDevelopment(),
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
}
