package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/gophdiary/internal/client/client"
	"github.com/dmitrijs2005/gophdiary/internal/client/config"
	"github.com/dmitrijs2005/gophdiary/internal/client/diary"
	"github.com/dmitrijs2005/gophdiary/internal/client/services"
	"github.com/dmitrijs2005/gophdiary/internal/filex"
	"github.com/dmitrijs2005/gophdiary/internal/logging"
)

// controller is the part of diary.Controller the REPL drives.
type controller interface {
	Activate(ctx context.Context) error
	Refresh(ctx context.Context) error
	CreateEntry(ctx context.Context, content string) error
	DeleteEntry(ctx context.Context, id int64) error
	SetYear(year int)
	SetMonth(month int) bool
	SetDraft(s string)
	Logout(ctx context.Context) error
	View() diary.View
}

type App struct {
	config     *config.Config
	db         *sql.DB
	sessions   services.SessionStore
	controller controller
	log        logging.Logger
	reader     *bufio.Reader
	out        io.Writer
	now        func() time.Time
}

// NewApp opens the session database and builds the services and the diary
// controller for cfg.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	path, err := filex.EnsureDir(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, path)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", path, "error", err)
		return nil, err
	}

	api := client.NewHTTPClient(cfg.ServerURL, cfg.RequestTimeout, log)
	sessions := services.NewSessionStore(api, db, log)
	notes := services.NewNoteService(api, sessions, log)

	a := newApp(sessions, log, bufio.NewReader(os.Stdin), os.Stdout)
	a.config = cfg
	a.db = db
	a.controller = diary.New(sessions, notes, a, log)
	return a, nil
}

func newApp(sessions services.SessionStore, log logging.Logger, reader *bufio.Reader, out io.Writer) *App {
	return &App{sessions: sessions, log: log, reader: reader, out: out, now: time.Now}
}

// Run restores the previous session, if any, and starts the REPL.
func (a *App) Run(ctx context.Context) error {
	if a.db != nil {
		defer a.db.Close()
	}

	printlnFn("Welcome to the diary CLI (type 'help' for commands)")
	if err := a.controller.Activate(ctx); err != nil {
		printError(err)
	}
	if a.isLoggedIn() {
		a.printSummary()
	}

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

// NavigateToLogin is called by the controller whenever the session ends.
func (a *App) NavigateToLogin() {
	printlnFn("You are not logged in. Type 'login' or 'register'.")
}

func (a *App) isLoggedIn() bool {
	return a.controller.View().State != diary.StateUnauthenticated
}

func (a *App) getStatus() string {
	v := a.controller.View()
	if v.State == diary.StateUnauthenticated {
		return ""
	}
	return fmt.Sprintf("(%s %s)", v.Username, selectionLabel(v))
}

func (a *App) printSummary() {
	v := a.controller.View()
	printlnFn(fmt.Sprintf("Logged in as %s, %d entries.", v.Username, v.Total))
}
