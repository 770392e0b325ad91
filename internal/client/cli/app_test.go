package cli

import (
	"bufio"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophdiary/internal/client/client"
	"github.com/dmitrijs2005/gophdiary/internal/client/diary"
	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/dmitrijs2005/gophdiary/internal/logging"
)

var fixedNow = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.Local)

type fakeSessions struct {
	identity  *models.Identity
	password  string
	loginErr  error
	regMsg    string
	regErr    error
	loginN    int
	registerN int
}

func (f *fakeSessions) Login(_ context.Context, username, password string) (*models.Identity, error) {
	f.loginN++
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.password = password
	f.identity = &models.Identity{Username: username, Token: "tok"}
	return f.identity, nil
}

func (f *fakeSessions) Register(context.Context, string, string) (string, error) {
	f.registerN++
	return f.regMsg, f.regErr
}

func (f *fakeSessions) Logout(context.Context) error {
	f.identity = nil
	return nil
}

func (f *fakeSessions) Current(context.Context) *models.Identity { return f.identity }

func (f *fakeSessions) AuthHeader(context.Context) client.Header { return client.Header{} }

type fakeNotes struct {
	notes     []models.Note
	created   []string
	deleted   []int64
	attempts  []string
	createErr error
	listErr   error
}

func (f *fakeNotes) ListAll(context.Context) ([]models.Note, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Note(nil), f.notes...), nil
}

func (f *fakeNotes) Create(_ context.Context, content string) error {
	f.attempts = append(f.attempts, content)
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, content)
	f.notes = append(f.notes, models.Note{ID: int64(len(f.notes) + 10), Content: content, CreatedAt: fixedNow})
	return nil
}

func (f *fakeNotes) Delete(_ context.Context, id int64) error {
	for i, n := range f.notes {
		if n.ID == id {
			f.deleted = append(f.deleted, id)
			f.notes = append(f.notes[:i], f.notes[i+1:]...)
			return nil
		}
	}
	return &client.RemoteError{Status: 404}
}

func sampleNotes() []models.Note {
	return []models.Note{
		{ID: 1, Content: "first", CreatedAt: time.Date(2023, time.March, 10, 9, 30, 0, 0, time.Local)},
		{ID: 2, Content: "second\nline two", CreatedAt: time.Date(2023, time.July, 1, 18, 0, 0, 0, time.Local)},
		{ID: 3, Content: "third", CreatedAt: time.Date(2024, time.January, 5, 8, 0, 0, 0, time.Local)},
	}
}

func newTestApp(t *testing.T, s *fakeSessions, n *fakeNotes, input string) *App {
	t.Helper()
	a := newApp(s, logging.NewNopLogger(), rdr(input), io.Discard)
	a.controller = diary.New(s, n, a, logging.NewNopLogger())
	a.now = func() time.Time { return fixedNow }
	return a
}

// stubPrompts answers getSimpleText with answers in order and getPassword with pw.
func stubPrompts(t *testing.T, pw string, answers ...string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(answers) == 0 {
			return "", io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getPassword = func(io.Writer) (string, error) { return pw, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func stubMultiline(t *testing.T, text string) {
	t.Helper()
	orig := getMultiline
	getMultiline = func(*bufio.Reader, string, io.Writer) (string, error) { return text, nil }
	t.Cleanup(func() { getMultiline = orig })
}

func loggedInApp(t *testing.T) (*App, *fakeSessions, *fakeNotes) {
	t.Helper()
	s := &fakeSessions{identity: &models.Identity{Username: "alice", Token: "tok"}}
	n := &fakeNotes{notes: sampleNotes()}
	a := newTestApp(t, s, n, "")
	require.NoError(t, a.controller.Activate(context.Background()))
	return a, s, n
}

func TestLogin_ActivatesDiary(t *testing.T) {
	out := capturePrintln(t)
	stubPrompts(t, "pw", "alice")
	s := &fakeSessions{}
	a := newTestApp(t, s, &fakeNotes{notes: sampleNotes()}, "")

	require.NoError(t, a.Login(context.Background()))

	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "pw", s.password)
	assert.Contains(t, *out, "Logged in as alice, 3 entries.")
	assert.Equal(t, "(alice all entries)", a.getStatus())
}

func TestLogin_SecondUserDoesNotSeePreviousDiary(t *testing.T) {
	capturePrintln(t)
	a, _, n := loggedInApp(t)
	require.NoError(t, a.SelectYear(context.Background(), []string{"2023"}))

	n.listErr = &client.RemoteError{Status: 500}
	stubPrompts(t, "pw", "bob")
	require.Error(t, a.Login(context.Background()))

	v := a.controller.View()
	assert.Equal(t, "bob", v.Username)
	assert.Equal(t, 0, v.Total)
	assert.Empty(t, v.Notes)
	assert.Equal(t, models.AllTime, v.Selection)
}

func TestLogin_Rejected(t *testing.T) {
	capturePrintln(t)
	stubPrompts(t, "bad", "alice")
	s := &fakeSessions{loginErr: &client.AuthError{Status: 401, Message: "Bad credentials"}}
	a := newTestApp(t, s, &fakeNotes{}, "")

	err := a.Login(context.Background())
	assert.EqualError(t, err, "login failed: Bad credentials")
	assert.False(t, a.isLoggedIn())
}

func TestLogin_EmptyUsername(t *testing.T) {
	stubPrompts(t, "pw", "")
	s := &fakeSessions{}
	a := newTestApp(t, s, &fakeNotes{}, "")

	require.Error(t, a.Login(context.Background()))
	assert.Equal(t, 0, s.loginN)
}

func TestRegister_ThenLogin(t *testing.T) {
	out := capturePrintln(t)
	stubPrompts(t, "pw", "bob", "y", "bob")
	s := &fakeSessions{regMsg: "User registered successfully!"}
	a := newTestApp(t, s, &fakeNotes{}, "")

	require.NoError(t, a.Register(context.Background()))

	assert.Equal(t, 1, s.registerN)
	assert.Equal(t, 1, s.loginN)
	assert.Contains(t, *out, "User registered successfully!")
	assert.True(t, a.isLoggedIn())
}

func TestRegister_DeclineLogin(t *testing.T) {
	capturePrintln(t)
	stubPrompts(t, "pw", "bob", "n")
	s := &fakeSessions{}
	a := newTestApp(t, s, &fakeNotes{}, "")

	require.NoError(t, a.Register(context.Background()))
	assert.Equal(t, 0, s.loginN)
	assert.False(t, a.isLoggedIn())
}

func TestRegister_Rejected(t *testing.T) {
	stubPrompts(t, "pw", "bob")
	s := &fakeSessions{regErr: &client.AuthError{Status: 400, Message: "Username is already taken!"}}
	a := newTestApp(t, s, &fakeNotes{}, "")

	err := a.Register(context.Background())
	assert.EqualError(t, err, "registration failed: Username is already taken!")
}

func TestAddNote(t *testing.T) {
	out := capturePrintln(t)
	stubMultiline(t, "dear diary")
	a, _, n := loggedInApp(t)

	require.NoError(t, a.AddNote(context.Background()))

	assert.Equal(t, []string{"dear diary"}, n.created)
	assert.Contains(t, *out, "Entry saved.")
	assert.Equal(t, 4, a.controller.View().Total)
	assert.Empty(t, a.controller.View().Draft)
}

func TestAddNote_Blank(t *testing.T) {
	stubMultiline(t, "  ")
	a, _, n := loggedInApp(t)

	err := a.AddNote(context.Background())
	assert.ErrorIs(t, err, diary.ErrBlankContent)
	assert.Empty(t, n.attempts)
	assert.Empty(t, a.controller.View().Draft)
}

func TestAddNote_RetryAfterFailureReusesDraft(t *testing.T) {
	out := capturePrintln(t)
	a, _, n := loggedInApp(t)
	n.createErr = &client.RemoteError{Status: 500}

	stubMultiline(t, "long entry typed once")
	require.Error(t, a.AddNote(context.Background()))
	assert.Equal(t, "long entry typed once", a.controller.View().Draft)

	n.createErr = nil
	stubMultiline(t, "")
	require.NoError(t, a.AddNote(context.Background()))

	assert.Equal(t, []string{"long entry typed once", "long entry typed once"}, n.attempts)
	assert.Equal(t, []string{"long entry typed once"}, n.created)
	assert.Empty(t, a.controller.View().Draft)
	assert.Contains(t, *out, "Unsaved entry:\nlong entry typed once")
}

func TestAddNote_NewTextReplacesDraft(t *testing.T) {
	capturePrintln(t)
	a, _, n := loggedInApp(t)
	a.controller.SetDraft("old text")

	stubMultiline(t, "fresh text")
	require.NoError(t, a.AddNote(context.Background()))

	assert.Equal(t, []string{"fresh text"}, n.created)
	assert.Empty(t, a.controller.View().Draft)
}

func TestDeleteNote(t *testing.T) {
	out := capturePrintln(t)
	a, _, n := loggedInApp(t)

	require.NoError(t, a.DeleteNote(context.Background(), []string{"2"}))
	assert.Equal(t, []int64{2}, n.deleted)
	assert.Contains(t, *out, "Entry #2 deleted.")
	assert.Equal(t, 2, a.controller.View().Total)

	assert.ErrorIs(t, a.DeleteNote(context.Background(), nil), errUsage)
	assert.ErrorIs(t, a.DeleteNote(context.Background(), []string{"abc"}), errUsage)
	assert.ErrorIs(t, a.DeleteNote(context.Background(), []string{"99"}), client.ErrNotFound)
}

func TestSelectYearAndMonth(t *testing.T) {
	out := capturePrintln(t)
	a, _, _ := loggedInApp(t)
	ctx := context.Background()

	assert.EqualError(t, a.SelectMonth(ctx, []string{"3"}), "select a year first")

	require.NoError(t, a.SelectYear(ctx, []string{"2023"}))
	assert.Contains(t, *out, "Showing 2023.")
	assert.Len(t, a.controller.View().Notes, 2)

	require.NoError(t, a.SelectMonth(ctx, []string{"7"}))
	assert.Contains(t, *out, "Showing July 2023.")
	assert.Equal(t, int64(2), a.controller.View().Notes[0].ID)

	assert.ErrorIs(t, a.SelectMonth(ctx, []string{"13"}), errUsage)
	assert.ErrorIs(t, a.SelectMonth(ctx, []string{"x"}), errUsage)
	assert.ErrorIs(t, a.SelectYear(ctx, []string{"-5"}), errUsage)

	require.NoError(t, a.SelectYear(ctx, []string{"ALL"}))
	assert.Equal(t, models.AllTime, a.controller.View().Selection)
}

func TestYearsAndWhoami(t *testing.T) {
	out := capturePrintln(t)
	a, _, _ := loggedInApp(t)

	require.NoError(t, a.Years(context.Background()))
	require.NoError(t, a.Whoami(context.Background()))
	assert.Equal(t, []string{"2024, 2023", "alice"}, *out)
}

func TestLogout_NavigatesToLogin(t *testing.T) {
	out := capturePrintln(t)
	a, s, _ := loggedInApp(t)

	require.NoError(t, a.Logout(context.Background()))
	assert.Nil(t, s.identity)
	assert.False(t, a.isLoggedIn())
	assert.Contains(t, *out, "You are not logged in. Type 'login' or 'register'.")

	*out = nil
	require.NoError(t, a.Whoami(context.Background()))
	assert.Equal(t, []string{"Not logged in."}, *out)
}

func TestRun_WithoutSession(t *testing.T) {
	out := capturePrintln(t)
	a := newTestApp(t, &fakeSessions{}, &fakeNotes{}, "exit\n")

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, []string{
		"Welcome to the diary CLI (type 'help' for commands)",
		"You are not logged in. Type 'login' or 'register'.",
		"diary>",
		"Bye!",
	}, *out)
}

func TestRun_RestoresSession(t *testing.T) {
	out := capturePrintln(t)
	s := &fakeSessions{identity: &models.Identity{Username: "alice", Token: "tok"}}
	a := newTestApp(t, s, &fakeNotes{notes: sampleNotes()}, "l\nexit\n")

	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, *out, "Logged in as alice, 3 entries.")
	assert.Contains(t, *out, "diary (alice all entries)>")
}
