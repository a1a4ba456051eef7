// Package server wires the quote server: PostgreSQL job store, object
// store, estimator and the gRPC endpoint, with graceful shutdown on signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/printquote/internal/document"
	"github.com/dmitrijs2005/printquote/internal/logging"
	"github.com/dmitrijs2005/printquote/internal/server/config"
	"github.com/dmitrijs2005/printquote/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/printquote/internal/server/services"
	"github.com/dmitrijs2005/printquote/internal/server/storage"

	gs "github.com/dmitrijs2005/printquote/internal/server/grpc"
)

const startupTimeout = 30 * time.Second

type App struct {
	config       *config.Config
	logger       logging.Logger
	db           *sql.DB
	quoteService *services.QuoteService
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, false)

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	db, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	var store services.ObjectStore
	s3, err := storage.NewS3Store(ctx, c)
	if err != nil {
		logger.Warn(ctx, "object store disabled", "error", err)
	} else {
		store = s3
	}

	qs := services.NewQuoteService(db, rm, store, document.NewBackend(), c, logger)

	return &App{config: c, logger: logger, db: db, quoteService: qs}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.quoteService, app.config.SecretKey, app.config.MaxArchiveBytes)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until a signal arrives or ctx is cancelled.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
