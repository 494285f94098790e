package tipatask

// Accessor plumbing shared by every namespace: a get reads the local store
// with the collection's documented seed, a set writes the local store and
// schedules a push. The unit of replacement is the whole collection —
// deletion is expressed as "the new slice no longer contains the record".

import (
	"context"
	"fmt"

	"github.com/donskikhas/tipatask-sub001/internal/snapshot"
)

func getRecords[T any](ctx context.Context, a *App, key string) ([]T, error) {
	col, ok := snapshot.ByKey(key)
	if !ok {
		return nil, fmt.Errorf("unknown collection %q", key)
	}
	var items []T
	if err := a.store.GetJSON(ctx, key, col.Seed, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func setRecords[T any](ctx context.Context, a *App, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	if err := a.store.SetJSON(ctx, key, items); err != nil {
		return err
	}
	return a.schedulePush(ctx)
}

func getSingleton[T any](ctx context.Context, a *App, key string) (T, error) {
	var v T
	col, ok := snapshot.ByKey(key)
	if !ok {
		return v, fmt.Errorf("unknown collection %q", key)
	}
	err := a.store.GetJSON(ctx, key, col.Seed, &v)
	return v, err
}

func setSingleton[T any](ctx context.Context, a *App, key string, v T) error {
	if err := a.store.SetJSON(ctx, key, v); err != nil {
		return err
	}
	return a.schedulePush(ctx)
}

// schedulePush is fire-and-forget: only local back-pressure surfaces to the
// caller, remote failures go to logs and metrics.
func (a *App) schedulePush(ctx context.Context) error {
	return mapQueueErr(a.engine.SchedulePush(ctx))
}
