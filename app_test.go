package tipatask

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donskikhas/tipatask-sub001/internal/devkv"
	"github.com/donskikhas/tipatask-sub001/internal/pushqueue"
)

func newTestApp(t *testing.T, remoteBaseURL string) *App {
	t.Helper()
	app, err := New(remoteBaseURL,
		WithStorePath(filepath.Join(t.TempDir(), "state.db")),
		WithHTTPTimeout(5*time.Second),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func newEmulator(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(devkv.NewServer(zerolog.Nop()).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func remoteDoc(t *testing.T, baseURL string) map[string]json.RawMessage {
	t.Helper()
	resp, err := http.Get(baseURL + "/.json")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &doc))
	return doc
}

func TestAccessorRoundTrip(t *testing.T) {
	app := newTestApp(t, "")
	ctx := context.Background()

	require.NoError(t, app.Tasks.Set(ctx, []Task{{ID: "t1", Title: "Позвонить клиенту", Status: "Новая"}}))

	tasks, err := app.Tasks.Get(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Позвонить клиенту", tasks[0].Title)
}

func TestTaskByID(t *testing.T) {
	app := newTestApp(t, "")
	ctx := context.Background()

	require.NoError(t, app.Tasks.Set(ctx, []Task{
		{ID: "t1", Title: "First", Status: "Новая"},
		{ID: "t2", Title: "Second", Status: "В работе"},
	}))

	task, err := app.Tasks.ByID(ctx, "t2")
	require.NoError(t, err)
	assert.Equal(t, "Second", task.Title)

	_, err = app.Tasks.ByID(ctx, "t-missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestEmptyCollectionsReadAsEmptySlices(t *testing.T) {
	app := newTestApp(t, "")
	ctx := context.Background()

	tasks, err := app.Tasks.Get(ctx)
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)

	deals, err := app.CRM.Deals(ctx)
	require.NoError(t, err)
	assert.NotNil(t, deals)
	assert.Empty(t, deals)
}

func TestSingletonRoundTrip(t *testing.T) {
	app := newTestApp(t, "")
	ctx := context.Background()

	yes := true
	require.NoError(t, app.People.SetNotificationPrefs(ctx, NotificationPrefs{TaskAssigned: &yes}))

	prefs, err := app.People.NotificationPrefs(ctx)
	require.NoError(t, err)
	require.NotNil(t, prefs.TaskAssigned)
	assert.True(t, *prefs.TaskAssigned)
}

func TestWritePushesToRemote(t *testing.T) {
	srv := newEmulator(t)
	app := newTestApp(t, srv.URL)
	ctx := context.Background()

	require.NoError(t, app.CRM.SetClients(ctx, []Client{{ID: "c1", Name: "Acme"}}))
	require.NoError(t, app.AwaitSync(ctx))

	doc := remoteDoc(t, srv.URL)
	assert.JSONEq(t, `[{"id":"c1","name":"Acme"}]`, string(doc["clients"]))
	// Every write pushes the whole document, so untouched collections carry
	// their seeds.
	assert.JSONEq(t, `[]`, string(doc["tasks"]))
}

func TestSettingsNeverSync(t *testing.T) {
	srv := newEmulator(t)
	app := newTestApp(t, srv.URL)
	ctx := context.Background()

	require.NoError(t, app.Settings.SetBotToken(ctx, "123456:secret"))
	require.NoError(t, app.Settings.SetActiveSession(ctx, "u1"))

	// Local-only settings schedule no push; force one to prove the document
	// still excludes them.
	require.NoError(t, app.Push(ctx))

	doc := remoteDoc(t, srv.URL)
	_, hasToken := doc["botToken"]
	_, hasSession := doc["activeSessionId"]
	assert.False(t, hasToken)
	assert.False(t, hasSession)

	token, err := app.Settings.BotToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "123456:secret", token)
}

func TestPullUpdatesAccessors(t *testing.T) {
	srv := newEmulator(t)

	// A second device pushes state first.
	other := newTestApp(t, srv.URL)
	ctx := context.Background()
	require.NoError(t, other.Tasks.Set(ctx, []Task{{ID: "t1", Status: "Новая", Title: "From other device"}}))
	require.NoError(t, other.AwaitSync(ctx))

	app := newTestApp(t, srv.URL)
	assert.True(t, app.Pull(ctx))

	tasks, err := app.Tasks.Get(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "From other device", tasks[0].Title)

	// Pulling again with nothing new reports no change.
	assert.False(t, app.Pull(ctx))
}

func TestActivityLogIsBounded(t *testing.T) {
	app := newTestApp(t, "")
	ctx := context.Background()

	for i := 0; i < 150; i++ {
		entry := ActivityEntry{ID: NewID(), Action: fmt.Sprintf("edit-%d", i)}
		require.NoError(t, app.Activity.Add(ctx, entry))
	}

	entries, err := app.Activity.Get(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 100)
	// Most recent first; the oldest 50 were dropped.
	assert.Equal(t, "edit-149", entries[0].Action)
	assert.Equal(t, "edit-50", entries[99].Action)
}

func TestLocalOnlyMode(t *testing.T) {
	app := newTestApp(t, "")
	ctx := context.Background()

	require.NoError(t, app.Inventory.SetWarehouses(ctx, []Warehouse{{ID: "w1", Name: "Main"}}))
	assert.False(t, app.Pull(ctx))
	assert.NoError(t, app.Push(ctx))
	assert.NoError(t, app.AwaitSync(ctx))

	warehouses, err := app.Inventory.Warehouses(ctx)
	require.NoError(t, err)
	require.Len(t, warehouses, 1)
}

func TestCloseIsIdempotent(t *testing.T) {
	app, err := New("", WithStorePath(filepath.Join(t.TempDir(), "state.db")))
	require.NoError(t, err)
	require.NoError(t, app.Close())
	require.NoError(t, app.Close())
}

func TestOptionValidation(t *testing.T) {
	_, err := New("", WithHTTPTimeout(0))
	assert.Error(t, err)

	_, err = New("", WithStorePath(""))
	assert.Error(t, err)

	_, err = New("", WithQueueSize(0))
	assert.Error(t, err)
}

func TestBackPressureMapping(t *testing.T) {
	err := mapQueueErr(&pushqueue.QueueFullError{Length: 4, Capacity: 4})
	assert.True(t, IsBackPressure(err))

	assert.NoError(t, mapQueueErr(nil))

	other := errors.New("boom")
	assert.Equal(t, other, mapQueueErr(other))
}

func TestNewIDIsUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := NewID()
		_, dup := seen[id]
		require.False(t, dup)
		seen[id] = struct{}{}
	}
}
