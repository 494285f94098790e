package tipatask

import (
	"context"

	"github.com/donskikhas/tipatask-sub001/internal/model"
)

// maxActivityEntries bounds the activity log; Add drops the oldest entries
// beyond it. This is the only accessor with built-in size-bounding and the
// only one that mutates by insertion rather than whole-collection replace.
const maxActivityEntries = 100

// ActivityAPI exposes the bounded, most-recent-first activity log.
type ActivityAPI struct {
	app *App
}

func (a ActivityAPI) Get(ctx context.Context) ([]model.ActivityEntry, error) {
	return getRecords[model.ActivityEntry](ctx, a.app, "activity")
}

func (a ActivityAPI) Set(ctx context.Context, entries []model.ActivityEntry) error {
	return setRecords(ctx, a.app, "activity", entries)
}

// Add prepends an entry, truncates the log to the most recent
// maxActivityEntries, and schedules a push like any other write.
func (a ActivityAPI) Add(ctx context.Context, entry model.ActivityEntry) error {
	entries, err := a.Get(ctx)
	if err != nil {
		return err
	}
	entries = append([]model.ActivityEntry{entry}, entries...)
	if len(entries) > maxActivityEntries {
		entries = entries[:maxActivityEntries]
	}
	return setRecords(ctx, a.app, "activity", entries)
}
