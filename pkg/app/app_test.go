package app

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/Copper-J/Worldtree/pkg/ingest"
	"github.com/Copper-J/Worldtree/pkg/media"
	"github.com/Copper-J/Worldtree/pkg/store"
	"github.com/Copper-J/Worldtree/pkg/timeline"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string { return t.path }
func (t testConfig) APIKey() string   { return "" }
func (t testConfig) Model() string    { return "" }

type stubParser struct {
	item    media.Item
	err     error
	started chan struct{}
	release chan struct{}
}

func (p *stubParser) Parse(ctx context.Context, prompt string, image []byte, mimeType string) (media.Item, error) {
	if p.started != nil {
		close(p.started)
	}
	if p.release != nil {
		<-p.release
	}
	return p.item, p.err
}

func newService(t *testing.T, parser Parser) *Service {
	t.Helper()
	base := t.TempDir()
	st, err := store.Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	gb, err := store.LoadGuestbook(testConfig{path: base})
	if err != nil {
		t.Fatalf("load guestbook: %v", err)
	}
	return &Service{Persistence: st, Guestbook: gb, Parser: parser}
}

func TestSaveAssignsIDToNewDraft(t *testing.T) {
	svc := newService(t, nil)

	draft := svc.NewDraft()
	draft.Title = "Manual Entry"

	saved, err := svc.Save(draft)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.ID == "" {
		t.Fatalf("expected id assigned on save")
	}

	entries, err := svc.Entries()
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if entries[0].ID != saved.ID {
		t.Fatalf("expected saved draft prepended")
	}
}

func TestSaveExistingKeepsID(t *testing.T) {
	svc := newService(t, nil)

	saved, err := svc.Save(media.Item{ID: "2", Title: "Edited"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.ID != "2" {
		t.Fatalf("expected id preserved, got %q", saved.ID)
	}

	entries, _ := svc.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected in-place replace, got %d entries", len(entries))
	}
}

func TestIngestInsertsWithFreshIDAndCover(t *testing.T) {
	parsed := media.Item{Title: "Dune", Category: media.Movie, Date: "2024-02-10", Rating: 4}
	svc := newService(t, &stubParser{item: parsed})

	image := []byte{0x89, 0x50, 0x4E, 0x47}
	item, err := svc.Ingest(context.Background(), "saw dune", image, "image/png")
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if item.ID == "" {
		t.Fatalf("expected fresh id assigned")
	}
	if item.CoverImage != base64.StdEncoding.EncodeToString(image) {
		t.Fatalf("expected cover image set from the upload")
	}

	entries, _ := svc.Entries()
	if len(entries) != 3 || entries[0].ID != item.ID {
		t.Fatalf("expected ingested item prepended")
	}
}

func TestIngestWithoutImageLeavesCoverEmpty(t *testing.T) {
	svc := newService(t, &stubParser{item: media.Item{Title: "X", Category: media.Book}})

	item, err := svc.Ingest(context.Background(), "a book", nil, "")
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if item.CoverImage != "" {
		t.Fatalf("expected no cover image, got %q", item.CoverImage)
	}
}

func TestIngestFailureLeavesStoreUnchanged(t *testing.T) {
	svc := newService(t, &stubParser{err: ingest.ErrInvalidResponse})

	before, _ := svc.Entries()
	_, err := svc.Ingest(context.Background(), "prompt", nil, "")
	if !errors.Is(err, ingest.ErrIngestion) {
		t.Fatalf("expected ingestion error, got %v", err)
	}

	after, _ := svc.Entries()
	if len(after) != len(before) {
		t.Fatalf("expected store unchanged on failure: %d vs %d", len(before), len(after))
	}
	if svc.Generating() {
		t.Fatalf("expected generating flag cleared after failure")
	}
}

func TestIngestSingleFlight(t *testing.T) {
	parser := &stubParser{
		item:    media.Item{Title: "Slow", Category: media.TV},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := newService(t, parser)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Ingest(context.Background(), "first", nil, "")
		done <- err
	}()

	<-parser.started
	if !svc.Generating() {
		t.Fatalf("expected generating flag set while in flight")
	}

	_, err := svc.Ingest(context.Background(), "second", nil, "")
	if !errors.Is(err, ErrGenerating) {
		t.Fatalf("expected ErrGenerating for concurrent ingest, got %v", err)
	}

	close(parser.release)
	if err := <-done; err != nil {
		t.Fatalf("first ingest failed: %v", err)
	}
	if svc.Generating() {
		t.Fatalf("expected generating flag cleared once settled")
	}
}

func TestTimelineRecomputesFromSnapshot(t *testing.T) {
	svc := newService(t, nil)

	groups, err := svc.Timeline(timeline.FilterAll, timeline.ScaleYear)
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	if len(groups) != 1 || groups[0].Key != "2023" {
		t.Fatalf("expected seed data grouped under 2023, got %+v", groups)
	}

	if _, err := svc.Save(media.Item{ID: "n", Title: "New", Category: media.Movie, Date: "2024-06-01"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	groups, err = svc.Timeline(timeline.FilterAll, timeline.ScaleYear)
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	if len(groups) != 2 || groups[0].Key != "2024" {
		t.Fatalf("expected view to reflect the mutation, got %+v", groups)
	}

	books, err := svc.Timeline(string(media.Book), timeline.ScaleDetail)
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	if len(books[0].Items) != 1 || books[0].Items[0].Category != media.Book {
		t.Fatalf("expected only book entries, got %+v", books[0].Items)
	}
}

func TestToggleZoomCycles(t *testing.T) {
	svc := newService(t, nil)

	if svc.Zoom() != timeline.NewZoom() {
		t.Fatalf("expected initial zoom state")
	}

	scales := []timeline.Scale{timeline.ScaleMonth, timeline.ScaleYear, timeline.ScaleMonth, timeline.ScaleDetail}
	for i, want := range scales {
		z := svc.ToggleZoom()
		if z.Scale != want {
			t.Fatalf("toggle %d: expected scale %q, got %q", i+1, want, z.Scale)
		}
	}
	if svc.Zoom() != timeline.NewZoom() {
		t.Fatalf("expected full cycle back to initial state")
	}
}

func TestRemoveThroughService(t *testing.T) {
	svc := newService(t, nil)

	if err := svc.Remove("1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	entries, _ := svc.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry after remove, got %d", len(entries))
	}
}
