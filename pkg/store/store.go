// Package store persists the media log and the guestbook as two
// independent keyed JSON blobs. The in-memory collection is the source
// of truth; every mutation rewrites the whole snapshot on disk.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"

	"github.com/Copper-J/Worldtree/pkg/guestbook"
	"github.com/Copper-J/Worldtree/pkg/media"
)

const (
	entriesKey   = "media_tracker_entries"
	guestbookKey = "guestbook_messages"
)

// Persistence is the media-entry persistence contract.
type Persistence interface {
	Load() []media.Item
	Save(entries []media.Item) error
	Insert(item media.Item) error
	Upsert(item media.Item) error
	Remove(id string) error
	All() []media.Item
}

// Load opens the media store backed by diskv using the provided
// config. A nil config falls back to LoadConfig discovery.
func Load(cfg Config) (*Store, error) {
	d, basePath, err := open(cfg)
	if err != nil {
		return nil, err
	}
	s := &Store{d: d, basePath: basePath}
	s.entries = s.Load()
	return s, nil
}

func open(cfg Config) (*diskv.Diskv, string, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, "", err
		}
	}

	basePath := cfg.BasePath()
	d := diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 1024 * 1024, // 1MB
	})
	return d, basePath, nil
}

// Store owns the canonical media collection. It is written by one
// logical actor at a time; there is no locking discipline beyond the
// caller's single-flight guard on ingestion.
type Store struct {
	d        *diskv.Diskv
	basePath string
	entries  []media.Item
}

// Load reads the persisted collection. Missing or corrupt data
// degrades to the seed entries so a first run is never empty; the
// failure is logged and otherwise swallowed. Records without an id are
// assigned one and the migrated collection is written straight back so
// the ids stay stable across loads.
func (s *Store) Load() []media.Item {
	raw, err := s.d.Read(entriesKey)
	if err != nil {
		s.entries = SeedEntries()
		return s.snapshot()
	}

	var loaded []media.Item
	if err := json.Unmarshal(raw, &loaded); err != nil {
		fmt.Fprintf(os.Stderr, "store: corrupt entries blob, falling back to seed data: %v\n", err)
		s.entries = SeedEntries()
		return s.snapshot()
	}

	migrated := false
	for i := range loaded {
		if loaded[i].ID == "" {
			loaded[i].ID = uuid.NewString()
			migrated = true
		}
	}

	s.entries = loaded
	if migrated {
		if err := s.write(); err != nil {
			fmt.Fprintf(os.Stderr, "store: persist migrated ids: %v\n", err)
		}
	}
	return s.snapshot()
}

// Save replaces the collection and persists the full snapshot. On a
// write failure the in-memory collection is still replaced and stays
// authoritative for the session.
func (s *Store) Save(entries []media.Item) error {
	s.entries = make([]media.Item, len(entries))
	copy(s.entries, entries)
	return s.write()
}

// Insert prepends the item and persists.
func (s *Store) Insert(item media.Item) error {
	s.entries = append([]media.Item{item}, s.entries...)
	return s.write()
}

// Upsert replaces the item with the same id in place, or prepends it
// as new when the id is absent.
func (s *Store) Upsert(item media.Item) error {
	for i := range s.entries {
		if s.entries[i].ID == item.ID {
			s.entries[i] = item
			return s.write()
		}
	}
	return s.Insert(item)
}

// Remove deletes the item with the given id; absent ids are a no-op.
func (s *Store) Remove(id string) error {
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return s.write()
		}
	}
	return nil
}

// All returns the current in-memory collection.
func (s *Store) All() []media.Item {
	return s.snapshot()
}

func (s *Store) snapshot() []media.Item {
	out := make([]media.Item, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Store) write() error {
	for i := range s.entries {
		s.entries[i].Tags = s.entries[i].CleanTags()
	}
	data, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("store: encode entries: %w", err)
	}
	if err := s.d.Write(entriesKey, data); err != nil {
		return fmt.Errorf("store: write entries: %w", err)
	}
	return nil
}

// SeedEntries returns the fixed example entries shown when nothing has
// been persisted yet, or when the persisted blob is unreadable.
func SeedEntries() []media.Item {
	return []media.Item{
		{
			ID:       "1",
			Title:    "Inception",
			Category: media.Movie,
			Date:     "2023-11-15",
			Thoughts: "Absolutely mind-bending visual effects. The ending still haunts me.",
			Tags:     []string{"Sci-Fi", "Thriller"},
			Rating:   5,
			Summary:  "A thief who steals corporate secrets through the use of dream-sharing technology.",
		},
		{
			ID:       "2",
			Title:    "The Three-Body Problem",
			Category: media.Book,
			Date:     "2023-12-01",
			Thoughts: "The scale of imagination is terrifying. Makes you feel small in the universe.",
			Tags:     []string{"Sci-Fi", "Philosophy"},
			Rating:   5,
			Summary:  "Nanotechnology researcher Wang Miao is taken into a secret joint operation center.",
		},
	}
}

// Guestbook persists the free-text message list under its own key,
// independent of the media collection.
type Guestbook struct {
	d        *diskv.Diskv
	messages []guestbook.Message
}

// LoadGuestbook opens the guestbook store. A missing or corrupt blob
// yields an empty list; the guestbook has no seed data.
func LoadGuestbook(cfg Config) (*Guestbook, error) {
	d, _, err := open(cfg)
	if err != nil {
		return nil, err
	}
	g := &Guestbook{d: d}
	g.load()
	return g, nil
}

func (g *Guestbook) load() {
	raw, err := g.d.Read(guestbookKey)
	if err != nil {
		g.messages = []guestbook.Message{}
		return
	}
	var loaded []guestbook.Message
	if err := json.Unmarshal(raw, &loaded); err != nil {
		fmt.Fprintf(os.Stderr, "store: corrupt guestbook blob, starting empty: %v\n", err)
		g.messages = []guestbook.Message{}
		return
	}
	g.messages = loaded
}

// Messages returns the current message list, newest first.
func (g *Guestbook) Messages() []guestbook.Message {
	out := make([]guestbook.Message, len(g.messages))
	copy(out, g.messages)
	return out
}

// Sign prepends a new message built from the given text.
func (g *Guestbook) Sign(text string) (guestbook.Message, error) {
	msg := guestbook.New(text)
	if msg.Text == "" {
		return guestbook.Message{}, errors.New("store: guestbook message text required")
	}
	g.messages = append([]guestbook.Message{msg}, g.messages...)
	return msg, g.write()
}

// Delete removes the message with the given id; absent ids are a no-op.
func (g *Guestbook) Delete(id string) error {
	for i := range g.messages {
		if g.messages[i].ID == id {
			g.messages = append(g.messages[:i], g.messages[i+1:]...)
			return g.write()
		}
	}
	return nil
}

func (g *Guestbook) write() error {
	data, err := json.Marshal(g.messages)
	if err != nil {
		return fmt.Errorf("store: encode guestbook: %w", err)
	}
	if err := g.d.Write(guestbookKey, data); err != nil {
		return fmt.Errorf("store: write guestbook: %w", err)
	}
	return nil
}
