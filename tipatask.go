// Package tipatask is the data core of the tipatask business-management
// suite: a local-first store of the application's collections (tasks, CRM,
// content plan, finance, inventory, org chart) kept in sync with one shared
// JSON snapshot in a cloud key-value endpoint.
//
// Every mutation lands in the local store synchronously and schedules a
// whole-document push in the background; Pull merges the remote snapshot
// back in. The local store is the only source of truth the caller observes.
package tipatask

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/donskikhas/tipatask-sub001/internal/localstore"
	"github.com/donskikhas/tipatask-sub001/internal/pushqueue"
	"github.com/donskikhas/tipatask-sub001/internal/remote"
	"github.com/donskikhas/tipatask-sub001/internal/syncengine"
)

// App is the application's sole data API. Collection accessors are grouped
// into named namespaces; each namespace is plumbing over the same local
// store and sync engine, with no logic of its own.
type App struct {
	store  *localstore.Store
	engine *syncengine.Engine
	log    zerolog.Logger

	// construction-time knobs, set by options before wiring
	storePath   string
	httpTimeout time.Duration
	queueSize   int

	closedOnce uint32 // ensures Close is idempotent

	Tasks     TasksAPI
	Workspace WorkspaceAPI
	CRM       CRMAPI
	Content   ContentAPI
	Finance   FinanceAPI
	Inventory InventoryAPI
	Org       OrgAPI
	People    PeopleAPI
	Activity  ActivityAPI
	Settings  SettingsAPI
}

// New constructs an App. remoteBaseURL may be empty: sync then silently
// becomes a no-op and every accessor works against the local store alone.
func New(remoteBaseURL string, opts ...Option) (*App, error) {
	a := &App{
		log:         zerolog.Nop(),
		httpTimeout: 30 * time.Second,
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	var err error
	if a.storePath != "" {
		a.store, err = localstore.Open(a.storePath)
	} else {
		a.store, err = localstore.OpenDefault()
	}
	if err != nil {
		return nil, err
	}

	var rc *remote.Client
	if remoteBaseURL != "" {
		rc = remote.New(remoteBaseURL, &http.Client{Timeout: a.httpTimeout})
	}

	a.engine = syncengine.New(a.store, rc, pushqueue.Config{QueueSize: a.queueSize}, a.log)

	a.Tasks = TasksAPI{app: a}
	a.Workspace = WorkspaceAPI{app: a}
	a.CRM = CRMAPI{app: a}
	a.Content = ContentAPI{app: a}
	a.Finance = FinanceAPI{app: a}
	a.Inventory = InventoryAPI{app: a}
	a.Org = OrgAPI{app: a}
	a.People = PeopleAPI{app: a}
	a.Activity = ActivityAPI{app: a}
	a.Settings = SettingsAPI{app: a}

	return a, nil
}

// Close flushes pending pushes and releases the local store. Safe to call
// multiple times.
func (a *App) Close() error {
	if !atomic.CompareAndSwapUint32(&a.closedOnce, 0, 1) {
		return nil
	}
	_ = a.engine.Close()
	return a.store.Close()
}

// Pull fetches the remote snapshot and merges it into the local store.
// It reports whether anything changed; callers re-read their collections
// when it did. Failures are logged, never returned.
func (a *App) Pull(ctx context.Context) bool {
	return a.engine.Pull(ctx)
}

// Push performs a synchronous whole-document overwrite of the remote
// snapshot. Most callers never need it: every Set schedules one.
func (a *App) Push(ctx context.Context) error {
	return a.engine.PushNow(ctx)
}

// AwaitSync blocks until all previously scheduled pushes have executed, by
// submitting a barrier through the FIFO queue.
func (a *App) AwaitSync(ctx context.Context) error {
	return a.engine.AwaitIdle(ctx)
}
