package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aljenshin/portfolio-console/internal/auth"
	"github.com/Aljenshin/portfolio-console/internal/inbox"
	"github.com/Aljenshin/portfolio-console/internal/logging"
	"github.com/Aljenshin/portfolio-console/internal/slots"
)

func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()

	cred := auth.Credential{
		ID:        "1",
		Username:  "owner@site.dev",
		Email:     "owner@site.dev",
		Password:  "hunter2",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	gate := auth.NewService(cred, slots.NewInMemoryRepository(), 24*time.Hour, 0, logger)

	var out bytes.Buffer
	app := &App{
		logger: logger,
		gate:   gate,
		inbox:  inbox.NewStore(),
		reader: bufio.NewReader(strings.NewReader("")),
		out:    &out,
	}
	return app, &out
}

func stubInput(t *testing.T, username, password string) {
	t.Helper()

	origText := getSimpleText
	origPassword := getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		return username, nil
	}
	getPassword = func(_ io.Writer) (string, error) {
		return password, nil
	}
	t.Cleanup(func() {
		getSimpleText = origText
		getPassword = origPassword
	})
}

func TestAppLogin_Success(t *testing.T) {
	app, out := newTestApp(t)
	stubInput(t, "owner@site.dev", "hunter2")

	require.NoError(t, app.Login(context.Background()))

	assert.True(t, app.isLoggedIn())
	assert.Contains(t, out.String(), "Welcome back, owner@site.dev!")
	assert.Equal(t, "owner@site.dev", app.status())
}

func TestAppLogin_FailureCountsAttempts(t *testing.T) {
	app, out := newTestApp(t)
	stubInput(t, "owner@site.dev", "wrong")
	ctx := context.Background()

	require.NoError(t, app.Login(ctx))
	assert.Contains(t, out.String(), "2 attempts remaining")

	require.NoError(t, app.Login(ctx))
	assert.Contains(t, out.String(), "1 attempts remaining")

	require.NoError(t, app.Login(ctx))
	assert.Contains(t, out.String(), "Too many failed attempts")

	// locked out: even correct credentials are not tried anymore
	stubInput(t, "owner@site.dev", "hunter2")
	require.NoError(t, app.Login(ctx))
	assert.False(t, app.isLoggedIn())
}

func TestAppLogout(t *testing.T) {
	app, out := newTestApp(t)
	stubInput(t, "owner@site.dev", "hunter2")
	ctx := context.Background()

	require.NoError(t, app.Login(ctx))
	require.True(t, app.isLoggedIn())

	require.NoError(t, app.Logout(ctx))
	assert.False(t, app.isLoggedIn())
	assert.Contains(t, out.String(), "Logged out.")
	assert.Equal(t, "logged out", app.status())

	// idempotent
	require.NoError(t, app.Logout(ctx))
}

func TestAppReply_MissingConversation(t *testing.T) {
	app, out := newTestApp(t)
	stubInput(t, "no-such-thread", "")

	require.NoError(t, app.Reply(context.Background()))
	assert.Contains(t, out.String(), "No such conversation.")
	assert.Empty(t, app.inbox.Conversations())
}

func TestAppCounts(t *testing.T) {
	app, out := newTestApp(t)
	inbox.SeedDemo(app.inbox)

	require.NoError(t, app.Counts(context.Background()))
	assert.Contains(t, out.String(), "Unread messages: 1")
	assert.Contains(t, out.String(), "Active conversations: 3")
}
