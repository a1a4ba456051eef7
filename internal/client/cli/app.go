package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/term"

	"github.com/dmitrijs2005/printquote/internal/client/client"
	"github.com/dmitrijs2005/printquote/internal/client/config"
	"github.com/dmitrijs2005/printquote/internal/client/repositories/history"
	"github.com/dmitrijs2005/printquote/internal/document"
	"github.com/dmitrijs2005/printquote/internal/estimator"
	"github.com/dmitrijs2005/printquote/internal/export"
	"github.com/dmitrijs2005/printquote/internal/filex"
	"github.com/dmitrijs2005/printquote/internal/logging"
)

const (
	historyFile  = "history.db"
	historyLimit = 20
)

var errNothingToDo = errors.New("no archive given (-i), nothing to do")

type App struct {
	config    *config.Config
	logger    logging.Logger
	out       io.Writer
	styled    bool
	db        *sql.DB
	history   history.Repository
	quotes    client.QuoteClient
	pages     estimator.PageCounter
	exporters *export.Registry
	now       func() time.Time
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	logger := logging.NewJSONLogger(os.Stderr, c.Debug)

	dir, err := filex.EnsureDir(c.HistoryDir)
	if err != nil {
		return nil, fmt.Errorf("history dir: %w", err)
	}

	db, err := client.InitDatabase(ctx, filepath.Join(dir, historyFile))
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	var qc client.QuoteClient
	if c.Remote() {
		gc, err := client.NewQuoteClient(c.ServerAddr, c.AccessToken, 0)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		qc = gc
	}

	return &App{
		config:    c,
		logger:    logger,
		out:       os.Stdout,
		styled:    term.IsTerminal(int(os.Stdout.Fd())),
		db:        db,
		history:   history.NewSQLiteRepository(db),
		quotes:    qc,
		pages:     document.NewBackend(),
		exporters: export.Default(),
		now:       time.Now,
	}, nil
}

// Run executes the command selected by the configuration.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	switch {
	case a.config.ListHistory:
		return a.listHistory(ctx)
	case a.config.JobID != "":
		return a.fetchJob(ctx)
	case a.config.Archive != "":
		return a.estimate(ctx)
	default:
		return errNothingToDo
	}
}

func (a *App) Close() {
	if a.quotes != nil {
		if err := a.quotes.Close(); err != nil {
			a.logger.Warn(context.Background(), "close quote client", "error", err)
		}
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}
