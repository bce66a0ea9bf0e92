package index_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/starford/jyotish/internal/index"
	"github.com/starford/jyotish/internal/testutil"
)

type eventRecorder struct {
	mu     sync.Mutex
	events []string
}

func (r *eventRecorder) record(kind, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, kind+":"+path)
}

func (r *eventRecorder) has(want string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e == want {
			return true
		}
	}
	return false
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestWatcherIndexesNewDocument(t *testing.T) {
	db := testutil.TestDB(t)
	vaultDir, store := testutil.TestVault(t)

	rec := &eventRecorder{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = index.Watch(ctx, db, store, vaultDir, slog.Default(), rec.record)
	}()
	// Give the watcher time to register the root.
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(vaultDir, "a.yaml"),
		testutil.ProfileDoc("Asha", "1990-05-15", "12:30"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	waitFor(t, func() bool {
		p, err := db.GetProfile("a.yaml")
		return err == nil && p != nil
	}, "document was not indexed by the watcher")

	waitFor(t, func() bool { return rec.has("created:a.yaml") }, "missing created event")

	cancel()
	<-done
}

func TestWatcherRemovesDeletedDocument(t *testing.T) {
	db := testutil.TestDB(t)
	vaultDir, store := testutil.TestVault(t)

	if err := store.Write("a.yaml", testutil.ProfileDoc("Asha", "1990-05-15", "12:30")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := index.Sync(db, store, slog.Default()); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	rec := &eventRecorder{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = index.Watch(ctx, db, store, vaultDir, slog.Default(), rec.record)
	}()
	time.Sleep(100 * time.Millisecond)

	if err := os.Remove(filepath.Join(vaultDir, "a.yaml")); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	waitFor(t, func() bool {
		p, err := db.GetProfile("a.yaml")
		return err == nil && p == nil
	}, "deleted document still indexed")

	cancel()
	<-done
}
