// Package syncengine reconciles the local store against the shared remote
// snapshot: Pull fetches the whole document and merges it per collection,
// Push serializes every collection and overwrites the document wholesale.
//
// All sync failures are swallowed at this boundary and surfaced only through
// logs and metrics; callers cannot distinguish "synced" from "sync silently
// failed" except by data staleness. That is the documented contract of the
// system, not an accident.
package syncengine

import (
	"bytes"
	"context"
	"encoding/json"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/donskikhas/tipatask-sub001/internal/localstore"
	"github.com/donskikhas/tipatask-sub001/internal/pushqueue"
	"github.com/donskikhas/tipatask-sub001/internal/remote"
	"github.com/donskikhas/tipatask-sub001/internal/snapshot"
)

// Engine owns the pull/push cycle. remote may be nil: with no endpoint
// configured, sync silently degrades to local-only operation.
type Engine struct {
	store  *localstore.Store
	remote *remote.Client
	queue  *pushqueue.Executor
	log    zerolog.Logger

	// pushPending coalesces bursts: while a scheduled push has not run
	// yet, further schedules are no-ops because the queued push reads
	// whatever local state exists when it executes.
	pushPending uint32
}

// New wires an engine. queueCfg.MaxAttempts defaults to 1: a failed push is
// logged and dropped, never retried, matching the push contract.
func New(store *localstore.Store, rc *remote.Client, queueCfg pushqueue.Config, log zerolog.Logger) *Engine {
	e := &Engine{
		store:  store,
		remote: rc,
		log:    log,
	}
	if queueCfg.ErrorHandler == nil {
		queueCfg.ErrorHandler = func(err error) {
			pushFailuresTotal.Inc()
			log.Error().Err(err).Msg("push failed")
		}
	}
	e.queue = pushqueue.New(queueCfg, log)
	return e
}

// Close drains and stops the push queue.
func (e *Engine) Close() error {
	e.queue.Stop()
	return nil
}

// AwaitIdle blocks until every previously scheduled push has executed.
func (e *Engine) AwaitIdle(ctx context.Context) error {
	return e.queue.Barrier(ctx)
}

// Pull fetches the remote snapshot and merges it into the local store.
// It reports whether anything in the local store changed; the view layer
// must re-read its collections when it did.
//
// Pull never fails from the caller's perspective: fetch errors, non-2xx
// statuses and malformed documents are logged and yield false, with no
// retry and no partial application.
func (e *Engine) Pull(ctx context.Context) bool {
	if e.remote == nil {
		return false
	}

	body, err := e.remote.Fetch(ctx)
	if err != nil {
		pullsTotal.WithLabelValues("error").Inc()
		e.log.Error().Err(err).Msg("pull: fetch failed")
		return false
	}

	doc, err := snapshot.ParseDocument(body)
	if err != nil {
		pullsTotal.WithLabelValues("error").Inc()
		e.log.Error().Err(err).Msg("pull: malformed snapshot document")
		return false
	}

	// Phase one: normalize and validate every known field up front, so a
	// malformed collection aborts the pull before anything is applied.
	type pendingField struct {
		col       snapshot.Collection
		canonical []byte
	}
	plan := make([]pendingField, 0, len(doc))
	for _, col := range snapshot.Collections() {
		raw, present := doc[col.Key]
		if !present {
			continue
		}
		canonical, err := col.Normalize(raw)
		if err != nil {
			pullsTotal.WithLabelValues("error").Inc()
			e.log.Error().Err(err).Msg("pull: malformed collection, aborting merge")
			return false
		}
		plan = append(plan, pendingField{col: col, canonical: canonical})
	}

	// Phase two: apply.
	changed := false
	for _, p := range plan {
		var (
			fieldChanged bool
			err          error
		)
		if p.col.Kind == snapshot.KindTasks {
			fieldChanged, err = e.mergeTaskField(ctx, p.canonical)
		} else {
			fieldChanged, err = e.overwriteField(ctx, p.col, p.canonical)
		}
		if err != nil {
			pullsTotal.WithLabelValues("error").Inc()
			e.log.Error().Err(err).Str("collection", p.col.Key).Msg("pull: local store failure")
			return false
		}
		changed = changed || fieldChanged
	}

	if changed {
		pullsTotal.WithLabelValues("changed").Inc()
	} else {
		pullsTotal.WithLabelValues("unchanged").Inc()
	}
	return changed
}

// overwriteField applies the generic merge rule: the unit of conflict is the
// whole collection, compared as canonical JSON. When the values differ the
// remote one wins wholesale — a local edit made between the last push and
// this pull is discarded for these collections.
func (e *Engine) overwriteField(ctx context.Context, col snapshot.Collection, canonical []byte) (bool, error) {
	local, ok, err := e.store.Get(ctx, col.Key)
	if err != nil {
		return false, err
	}
	if !ok {
		local = []byte(col.Seed)
	}
	if bytes.Equal(local, canonical) {
		return false, nil
	}
	if err := e.store.Set(ctx, col.Key, canonical); err != nil {
		return false, err
	}
	return true, nil
}

// SchedulePush queues a whole-document overwrite. It is fire-and-forget:
// the caller gets an error only for local back-pressure, never for remote
// failures, which are logged by the queue's error handler.
//
// Rapid successive schedules coalesce: a queued push serializes the local
// state at execution time, so one trailing push covers a burst of edits.
func (e *Engine) SchedulePush(ctx context.Context) error {
	if e.remote == nil {
		return nil
	}
	if !atomic.CompareAndSwapUint32(&e.pushPending, 0, 1) {
		return nil
	}

	job := pushqueue.JobFunc(func(jobCtx context.Context) error {
		atomic.StoreUint32(&e.pushPending, 0)
		return e.push(jobCtx)
	})

	// The accessor's context ends with its call; the queued push must
	// outlive it.
	if err := e.queue.Submit(context.WithoutCancel(ctx), job); err != nil {
		atomic.StoreUint32(&e.pushPending, 0)
		return err
	}
	return nil
}

// PushNow performs a synchronous whole-document overwrite, bypassing the
// queue. Used by the CLI and by shutdown flushes.
func (e *Engine) PushNow(ctx context.Context) error {
	if e.remote == nil {
		return nil
	}
	return e.push(ctx)
}

func (e *Engine) push(ctx context.Context) error {
	doc, err := e.buildDocument(ctx)
	if err != nil {
		return err
	}
	if err := e.remote.Replace(ctx, doc); err != nil {
		return err
	}
	pushesTotal.Inc()
	return nil
}

// buildDocument assembles the full snapshot from the local store, seeding
// any collection that has never been written. Map keys marshal sorted, so
// identical local state always yields an identical document.
func (e *Engine) buildDocument(ctx context.Context) ([]byte, error) {
	doc := make(map[string]json.RawMessage, len(snapshot.Collections()))
	for _, col := range snapshot.Collections() {
		value, ok, err := e.store.Get(ctx, col.Key)
		if err != nil {
			return nil, err
		}
		if !ok {
			value = []byte(col.Seed)
		}
		doc[col.Key] = json.RawMessage(value)
	}
	return json.Marshal(doc)
}
