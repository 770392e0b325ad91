package diary

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophdiary/internal/client/client"
	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/dmitrijs2005/gophdiary/internal/client/services"
	"github.com/dmitrijs2005/gophdiary/internal/common"
	"github.com/dmitrijs2005/gophdiary/internal/logging"
)

// State is the lifecycle phase of the diary view.
type State int

const (
	StateUnauthenticated State = iota
	StateLoading
	StateReady
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Navigator is told when the user has to sign in again.
type Navigator interface {
	NavigateToLogin()
}

// View is a copy of the controller state for rendering.
type View struct {
	Username  string
	State     State
	Notes     []models.Note // filtered by Selection
	Total     int           // size of the unfiltered snapshot
	Years     []int
	Months    []models.MonthOption
	Selection models.Selection
	// MonthEnabled is false while the year selection is All.
	MonthEnabled bool
	Draft        string
	Err          error
}

// Controller drives the diary view.
//
// Remote calls are made without holding the mutex. Every logout bumps the
// session epoch; a remote result is applied only if the epoch it started in
// is still current.
type Controller struct {
	sessions services.SessionStore
	notes    services.NoteService
	nav      Navigator
	log      logging.Logger
	now      func() time.Time

	mu       sync.Mutex
	epoch    uint64
	state    State
	username string
	snapshot []models.Note
	loaded   bool
	sel      models.Selection
	draft    string
	lastErr  error
}

// New builds a Controller in the unauthenticated state.
func New(sessions services.SessionStore, notes services.NoteService, nav Navigator, log logging.Logger) *Controller {
	return &Controller{
		sessions: sessions,
		notes:    notes,
		nav:      nav,
		log:      log,
		now:      time.Now,
		state:    StateUnauthenticated,
		sel:      models.AllTime,
	}
}

// Activate checks the session and loads the snapshot. Without a session, or
// with an expired token, the user is sent to the login screen.
func (c *Controller) Activate(ctx context.Context) error {
	id := c.sessions.Current(ctx)
	if id == nil {
		c.mu.Lock()
		c.resetLocked()
		c.mu.Unlock()
		c.nav.NavigateToLogin()
		return nil
	}

	if id.Expired(c.now()) {
		c.log.Info(ctx, "session expired", "username", id.Username)
		c.mu.Lock()
		c.resetLocked()
		c.lastErr = common.ErrTokenExpired
		c.mu.Unlock()
		if err := c.sessions.Logout(ctx); err != nil {
			c.log.Error(ctx, "clearing expired session failed", "error", err)
		}
		c.nav.NavigateToLogin()
		return common.ErrTokenExpired
	}

	c.mu.Lock()
	if c.username != id.Username {
		// a different user starts from a clean state
		c.resetLocked()
		c.username = id.Username
	}
	c.state = StateLoading
	epoch := c.epoch
	c.mu.Unlock()

	return c.fetch(ctx, epoch)
}

// Refresh refetches the snapshot.
func (c *Controller) Refresh(ctx context.Context) error {
	epoch, err := c.activeEpoch()
	if err != nil {
		return err
	}
	return c.fetch(ctx, epoch)
}

// CreateEntry submits a new note and refetches. A blank content is rejected
// locally with ErrBlankContent. The draft is cleared only when the server
// accepted the note.
func (c *Controller) CreateEntry(ctx context.Context, content string) error {
	if strings.TrimSpace(content) == "" {
		c.setErr(ErrBlankContent)
		return ErrBlankContent
	}

	epoch, err := c.activeEpoch()
	if err != nil {
		return err
	}

	if err := c.notes.Create(ctx, content); err != nil {
		return c.fail(ctx, epoch, err)
	}

	c.mu.Lock()
	if c.epoch == epoch {
		c.draft = ""
	}
	c.mu.Unlock()

	return c.fetch(ctx, epoch)
}

// DeleteEntry deletes a note and refetches. The snapshot is not touched
// until the refetch succeeds.
func (c *Controller) DeleteEntry(ctx context.Context, id int64) error {
	epoch, err := c.activeEpoch()
	if err != nil {
		return err
	}

	if err := c.notes.Delete(ctx, id); err != nil {
		return c.fail(ctx, epoch, err)
	}

	return c.fetch(ctx, epoch)
}

// SetYear selects a year, or every year with models.All, and resets the
// month to All.
func (c *Controller) SetYear(year int) {
	if year < 0 {
		year = models.All
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sel = models.Selection{Year: year, Month: models.All}
}

// SetMonth selects a zero-based month or models.All. It reports false and
// changes nothing when no year is selected or the month is out of range.
func (c *Controller) SetMonth(month int) bool {
	if month != models.All && (month < 0 || month > 11) {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sel.Year == models.All {
		return false
	}
	c.sel.Month = month
	return true
}

// SetDraft stores the text being composed.
func (c *Controller) SetDraft(s string) {
	c.mu.Lock()
	c.draft = s
	c.mu.Unlock()
}

// Draft returns the text kept from the last unsaved entry.
func (c *Controller) Draft() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Logout ends the session and navigates to login. Calls still in flight
// finish, but their results are dropped.
func (c *Controller) Logout(ctx context.Context) error {
	c.mu.Lock()
	c.resetLocked()
	c.mu.Unlock()

	err := c.sessions.Logout(ctx)
	if err != nil {
		c.log.Error(ctx, "logout failed", "error", err)
	}
	c.nav.NavigateToLogin()
	return err
}

// View returns a snapshot of the current state with the filter applied.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	return View{
		Username:     c.username,
		State:        c.state,
		Notes:        Filter(c.snapshot, c.sel),
		Total:        len(c.snapshot),
		Years:        Years(c.snapshot),
		Months:       models.Months(),
		Selection:    c.sel,
		MonthEnabled: c.sel.Year != models.All,
		Draft:        c.draft,
		Err:          c.lastErr,
	}
}

func (c *Controller) fetch(ctx context.Context, epoch uint64) error {
	notes, err := c.notes.ListAll(ctx)
	if err != nil {
		return c.fail(ctx, epoch, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		c.log.Debug(ctx, "dropping stale note list")
		return nil
	}
	c.snapshot = slices.Clone(notes)
	c.state = StateReady
	if !c.loaded {
		c.sel = models.AllTime
		c.loaded = true
	}
	c.lastErr = nil
	return nil
}

// fail records err and, for a 401, ends the session the call belonged to.
func (c *Controller) fail(ctx context.Context, epoch uint64, err error) error {
	c.mu.Lock()
	if c.epoch != epoch {
		c.mu.Unlock()
		return err
	}
	unauthorized := client.IsUnauthorized(err)
	if unauthorized {
		c.resetLocked()
	}
	c.lastErr = err
	c.mu.Unlock()

	if !unauthorized {
		return err
	}

	c.log.Warn(ctx, "session rejected by server, logging out")
	if lerr := c.sessions.Logout(ctx); lerr != nil {
		c.log.Error(ctx, "logout failed", "error", lerr)
	}
	c.nav.NavigateToLogin()
	return err
}

func (c *Controller) activeEpoch() (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateUnauthenticated {
		return 0, common.ErrNoIdentity
	}
	return c.epoch, nil
}

func (c *Controller) setErr(err error) {
	c.mu.Lock()
	c.lastErr = err
	c.mu.Unlock()
}

// resetLocked drops all session state and starts a new epoch.
func (c *Controller) resetLocked() {
	c.epoch++
	c.state = StateUnauthenticated
	c.username = ""
	c.snapshot = nil
	c.loaded = false
	c.sel = models.AllTime
	c.draft = ""
	c.lastErr = nil
}
