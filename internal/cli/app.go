// Package cli implements the interactive terminal client: account commands
// and the seven-step order wizard, driven by a small REPL.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/jonboulle/clockwork"

	"github.com/dmitrijs2005/drishya/internal/config"
	"github.com/dmitrijs2005/drishya/internal/email"
	"github.com/dmitrijs2005/drishya/internal/files"
	"github.com/dmitrijs2005/drishya/internal/i18n"
	"github.com/dmitrijs2005/drishya/internal/kvstore"
	"github.com/dmitrijs2005/drishya/internal/logging"
	"github.com/dmitrijs2005/drishya/internal/orders"
	"github.com/dmitrijs2005/drishya/internal/session"
	"github.com/dmitrijs2005/drishya/internal/users"
	"github.com/dmitrijs2005/drishya/internal/wizard"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	store    kvstore.Store
	session  *session.Manager
	users    *users.Service
	i18n     *i18n.Service
	wizard   *wizard.Controller
	uploader *files.Uploader
	pipeline *orders.Pipeline

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	logger := logging.NewTextLogger(os.Stderr)
	clock := clockwork.NewRealClock()

	var (
		db    *sql.DB
		store kvstore.Store
		err   error
	)
	if c.DatabaseDSN != "" {
		db, err = kvstore.OpenPostgres(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		store = kvstore.NewPostgresStore(db)
	} else {
		db, err = kvstore.OpenSQLite(ctx, c.SQLitePath)
		if err != nil {
			return nil, err
		}
		store = kvstore.NewSQLiteStore(db)
	}

	sess := session.NewManager(store, c.SecretKey, c.SessionValidity)
	userService := users.NewService(store, sess, clock, logger)

	langService := i18n.NewService(store, logger)
	if i18n.IsSupported(c.DefaultLanguage) {
		_ = langService.SetLanguage(ctx, c.DefaultLanguage)
	}

	ctrl := wizard.NewController(store, clock, logger, wizard.Options{
		AutosaveDelay:  c.AutosaveDelay,
		SavedIndicator: c.SavedIndicator,
	})

	transport := email.NewSimulatedTransport(clock, email.MathRand{}, c.TransportLatency, c.FailureRate)
	dispatcher := email.NewDispatcher(transport, logger)

	uploader := files.NewUploader(files.S3Config{
		Bucket:       c.S3Bucket,
		Region:       c.S3Region,
		BaseEndpoint: c.S3BaseEndpoint,
		AccessKey:    c.S3AccessKey,
		SecretKey:    c.S3SecretKey,
	}, clock, logger)

	pipeline := orders.NewPipeline(dispatcher, store, clock, logger, c.ProcessingDelay)

	return &App{
		config:   c,
		logger:   logger,
		db:       db,
		store:    store,
		session:  sess,
		users:    userService,
		i18n:     langService,
		wizard:   ctrl,
		uploader: uploader,
		pipeline: pipeline,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if u := a.session.Current(); u != nil {
		return "(" + u.Email + ")"
	}
	return ""
}

// Run restores persisted state and drives the REPL until exit or ctx cancel.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	if err := a.i18n.Load(ctx); err != nil {
		a.logger.Warn(ctx, "language restore failed", "error", err)
	}
	if err := a.users.Restore(ctx); err != nil {
		a.logger.Warn(ctx, "session restore failed", "error", err)
	}

	printlnFn("Welcome to Drishya CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
