package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Copper-J/Worldtree/pkg/media"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string { return t.path }
func (t testConfig) APIKey() string   { return "" }
func (t testConfig) Model() string    { return "" }

func openStore(t *testing.T, base string) *Store {
	t.Helper()
	s, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return s
}

func writeBlob(t *testing.T, base string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(base, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(base, entriesKey), data, 0o644); err != nil {
		t.Fatalf("write blob: %v", err)
	}
}

func TestLoadMissingBlobSeeds(t *testing.T) {
	s := openStore(t, t.TempDir())

	all := s.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 seed entries, got %d", len(all))
	}
	if all[0].Title != "Inception" {
		t.Fatalf("expected Inception seed first, got %q", all[0].Title)
	}
	if all[1].Category != media.Book {
		t.Fatalf("expected Book seed second, got %q", all[1].Category)
	}
}

func TestLoadCorruptBlobSeeds(t *testing.T) {
	base := t.TempDir()
	writeBlob(t, base, []byte("{not json"))

	s := openStore(t, base)
	if len(s.All()) != 2 {
		t.Fatalf("expected seed fallback on corrupt blob, got %d entries", len(s.All()))
	}
}

func TestLoadMigratesMissingIDs(t *testing.T) {
	base := t.TempDir()
	blob, _ := json.Marshal([]media.Item{
		{Title: "No ID Yet", Category: media.Movie, Date: "2024-03-01"},
		{ID: "keep-me", Title: "Has ID", Category: media.Book, Date: "2024-03-02"},
		{Title: "Also No ID", Category: media.Music, Date: "2024-03-03"},
	})
	writeBlob(t, base, blob)

	s := openStore(t, base)
	first := s.All()

	if first[0].ID == "" || first[2].ID == "" {
		t.Fatalf("expected migration to assign ids")
	}
	if first[0].ID == first[2].ID {
		t.Fatalf("expected pairwise-distinct ids, both are %q", first[0].ID)
	}
	if first[1].ID != "keep-me" {
		t.Fatalf("expected existing id preserved, got %q", first[1].ID)
	}

	// The migrated ids must survive a fresh load.
	second := openStore(t, base).All()
	for i := range first {
		if second[i].ID != first[i].ID {
			t.Fatalf("id at %d changed across loads: %q vs %q", i, first[i].ID, second[i].ID)
		}
	}
}

func TestInsertPrepends(t *testing.T) {
	s := openStore(t, t.TempDir())

	if err := s.Insert(media.Item{ID: "new", Title: "Newest"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	all := s.All()
	if all[0].ID != "new" {
		t.Fatalf("expected inserted item first, got %q", all[0].ID)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 entries after insert, got %d", len(all))
	}
}

func TestUpsertNewBehavesLikeInsert(t *testing.T) {
	s := openStore(t, t.TempDir())

	if err := s.Upsert(media.Item{ID: "fresh", Title: "Fresh"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if s.All()[0].ID != "fresh" {
		t.Fatalf("expected upserted new item to be prepended")
	}
}

func TestUpsertExistingReplacesInPlace(t *testing.T) {
	s := openStore(t, t.TempDir())

	if err := s.Upsert(media.Item{ID: "2", Title: "Edited Title", Category: media.Book}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	all := s.All()
	if len(all) != 2 {
		t.Fatalf("expected no growth on replace, got %d entries", len(all))
	}
	if all[1].ID != "2" || all[1].Title != "Edited Title" {
		t.Fatalf("expected id 2 replaced in place, got %+v", all[1])
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := openStore(t, t.TempDir())

	if err := s.Remove("1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(s.All()) != 1 {
		t.Fatalf("expected 1 entry after remove, got %d", len(s.All()))
	}
	if err := s.Remove("1"); err != nil {
		t.Fatalf("second remove must be a no-op, got %v", err)
	}
	if len(s.All()) != 1 {
		t.Fatalf("second remove changed the collection")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	base := t.TempDir()
	s := openStore(t, base)

	entries := []media.Item{
		{ID: "a", Title: "One", Category: media.Movie, Date: "2024-01-01", Tags: []string{"x"}, Rating: 4},
		{ID: "b", Title: "Two", Category: media.Music, Date: "bad date", Rating: 9},
	}
	if err := s.Save(entries); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := openStore(t, base).All()
	if len(loaded) != len(entries) {
		t.Fatalf("expected %d entries, got %d", len(entries), len(loaded))
	}
	for i := range entries {
		if loaded[i].ID != entries[i].ID {
			t.Fatalf("id mismatch at %d: %q vs %q", i, loaded[i].ID, entries[i].ID)
		}
	}
	// Out-of-range rating and unparseable date are stored as-is.
	if loaded[1].Rating != 9 || loaded[1].Date != "bad date" {
		t.Fatalf("expected tolerated values to round-trip, got %+v", loaded[1])
	}
}

func TestSaveStripsEmptyTags(t *testing.T) {
	base := t.TempDir()
	s := openStore(t, base)

	err := s.Save([]media.Item{{ID: "a", Tags: []string{"Sci-Fi", " ", "", "Drama"}}})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := openStore(t, base).All()
	if len(loaded[0].Tags) != 2 {
		t.Fatalf("expected empty tags stripped at save time, got %v", loaded[0].Tags)
	}
}

func TestGuestbookSignAndDelete(t *testing.T) {
	base := t.TempDir()
	g, err := LoadGuestbook(testConfig{path: base})
	if err != nil {
		t.Fatalf("load guestbook: %v", err)
	}

	if len(g.Messages()) != 0 {
		t.Fatalf("expected empty guestbook on first run")
	}

	first, err := g.Sign("hello there")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if first.ID == "" || first.Timestamp == "" {
		t.Fatalf("expected id and timestamp assigned, got %+v", first)
	}

	second, err := g.Sign("  another  ")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if second.Text != "another" {
		t.Fatalf("expected trimmed text, got %q", second.Text)
	}

	msgs := g.Messages()
	if len(msgs) != 2 || msgs[0].ID != second.ID {
		t.Fatalf("expected newest message first")
	}

	if _, err := g.Sign("   "); err == nil {
		t.Fatalf("expected error for whitespace-only message")
	}

	if err := g.Delete(first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := g.Delete(first.ID); err != nil {
		t.Fatalf("second delete must be a no-op, got %v", err)
	}

	// Guestbook persistence is independent of the media collection.
	reloaded, err := LoadGuestbook(testConfig{path: base})
	if err != nil {
		t.Fatalf("reload guestbook: %v", err)
	}
	if len(reloaded.Messages()) != 1 {
		t.Fatalf("expected 1 persisted message, got %d", len(reloaded.Messages()))
	}
}
