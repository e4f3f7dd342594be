package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/juanchoclasses/CursorWorkshop/internal/handlers"
	"github.com/juanchoclasses/CursorWorkshop/internal/logger"
	"github.com/juanchoclasses/CursorWorkshop/internal/repository/memory"
	"github.com/juanchoclasses/CursorWorkshop/internal/service/ledger"
)

const shutdownTimeout = 5 * time.Second

type ServerApp struct {
	ListenAddr string
	Handler    http.Handler
	Logger     logger.Logger
}

func NewServerApp(ctx context.Context, c *Config) (*ServerApp, error) {
	// Initialize logger
	logger, err := logger.New(c.Environment, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("error while initializing logger: %w", err)
	}

	// Initialize storage and services
	storage := memory.NewStorage()
	ledgerService := ledger.NewService(ledger.Config{}, storage)

	if c.SeedDemoData {
		if _, err := ledgerService.SeedDemoData(ctx); err != nil {
			return nil, fmt.Errorf("error while seeding demo data: %w", err)
		}
	}

	accounts, transactions := storage.Stats()
	logger.Info("Ledger ready", "accounts", accounts, "transactions", transactions)

	mux := handlers.NewRouter(ledgerService, logger, c.AllowOrigins)

	return &ServerApp{
		ListenAddr: c.ListenAddr,
		Handler:    mux,
		Logger:     logger,
	}, nil
}

// Run starts http server and closes gracefully on context cancellation
func (s *ServerApp) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.ListenAddr,
		Handler:           s.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	srvCtx, srvCtxCancel := context.WithCancel(ctx)
	defer srvCtxCancel()

	go func() {
		<-srvCtx.Done()

		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(timeoutCtx); errors.Is(err, context.DeadlineExceeded) {
			s.Logger.Error("HTTP server shutdown timeout exceeded, forcing shutdown...")
		}
		s.Logger.Info("HTTP server stopped")
		close(idleConnsClosed)
	}()

	// Listen and serve until context is cancelled; then close gracefully connections
	s.Logger.Info("Starting server", "address", s.ListenAddr)
	err := httpServer.ListenAndServe()
	srvCtxCancel()
	<-idleConnsClosed

	return err
}
