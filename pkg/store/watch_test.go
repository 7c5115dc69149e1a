package store

import (
	"context"
	"testing"
	"time"

	"github.com/Copper-J/Worldtree/pkg/media"
)

func TestWatchEmitsEntriesChanged(t *testing.T) {
	base := t.TempDir()
	s := openStore(t, base)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before mutating.
	time.Sleep(50 * time.Millisecond)

	if err := s.Insert(media.Item{ID: "w", Title: "Watched"}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventEntriesChanged || evt.Type == EventInvalidated {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for change event")
		}
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	s := openStore(t, t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for channel close")
		}
	}
}
