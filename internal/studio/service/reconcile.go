package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fotosdotap/studio/internal/studio/store"
)

// Reconciler periodically compares the directory index against the stored
// records and repairs what the non-transactional dual-write left behind:
// dangling index entries are removed, orphan records are reported but kept
// (they still hold client data an operator may want back).
type Reconciler struct {
	Dir      *store.Directory
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewReconciler creates a reconciler running every interval (default 1h).
func NewReconciler(dir *store.Directory, logger *slog.Logger, interval time.Duration) *Reconciler {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Reconciler{
		Dir:      dir,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start launches the background worker. Call Stop to shut it down.
func (r *Reconciler) Start() {
	go r.run()
	r.Logger.Info("reconciler started", "interval", r.Interval)
}

// Stop shuts the worker down, waiting for an in-progress pass to finish.
func (r *Reconciler) Stop() {
	close(r.stopCh)
	<-r.doneCh
	r.Logger.Info("reconciler stopped")
}

func (r *Reconciler) run() {
	defer close(r.doneCh)

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	// One pass right away so a restart repairs promptly.
	if err := r.Reconcile(context.Background()); err != nil {
		r.Logger.Error("reconcile pass failed", "error", err)
	}

	for {
		select {
		case <-ticker.C:
			if err := r.Reconcile(context.Background()); err != nil {
				r.Logger.Error("reconcile pass failed", "error", err)
			}
		case <-r.stopCh:
			return
		}
	}
}

// Reconcile runs a single pass. Exported so tests and an eventual admin
// endpoint can trigger it on demand.
func (r *Reconciler) Reconcile(ctx context.Context) error {
	index, err := r.Dir.Index(ctx)
	if err != nil {
		return err
	}
	keys, err := r.Dir.ListRecordKeys(ctx)
	if err != nil {
		return err
	}

	stored := make(map[string]bool, len(keys))
	for _, key := range keys {
		stored[key] = true
	}

	var dangling, orphans int

	referenced := make(map[string]bool, len(index))
	for email, key := range index {
		referenced[key] = true
		if stored[key] {
			continue
		}
		// Entry points at nothing: it breaks lookups, so drop it.
		if err := r.Dir.RemoveEntry(ctx, email, key); err != nil {
			r.Logger.Error("failed to remove dangling index entry",
				"email", email, "key", key, "error", err)
			continue
		}
		r.Logger.Warn("removed dangling index entry", "email", email, "key", key)
		dangling++
	}

	for _, key := range keys {
		if referenced[key] {
			continue
		}
		orphans++
		c, err := r.Dir.GetRecord(ctx, key)
		switch {
		case errors.Is(err, store.ErrCorrupted):
			r.Logger.Warn("orphan record is corrupted", "key", key, "error", err)
		case err != nil:
			r.Logger.Error("failed to inspect orphan record", "key", key, "error", err)
		default:
			r.Logger.Warn("orphan record not referenced by index", "key", key, "email", c.Email)
		}
	}

	r.Logger.Info("reconcile pass completed",
		"entries", len(index), "records", len(keys),
		"dangling_removed", dangling, "orphans", orphans)
	return nil
}
