// Package app provides high-level operations over the media log so
// CLIs and other surfaces can share logic. It wraps persistence, the
// timeline transforms and the ingestion client.
package app

import (
	"context"
	"encoding/base64"
	"errors"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/Copper-J/Worldtree/pkg/guestbook"
	"github.com/Copper-J/Worldtree/pkg/media"
	"github.com/Copper-J/Worldtree/pkg/store"
	"github.com/Copper-J/Worldtree/pkg/timeline"
)

// Parser is the ingestion contract: free text and an optional image in,
// a candidate entry (without id or cover) out.
type Parser interface {
	Parse(ctx context.Context, prompt string, image []byte, mimeType string) (media.Item, error)
}

// ErrGenerating is returned when an ingestion call is already in
// flight; at most one is permitted at a time.
var ErrGenerating = errors.New("app: an analysis is already in progress")

// Service provides the core operations: manual add, AI ingestion,
// edit, delete, filter, aggregate and zoom.
type Service struct {
	Persistence store.Persistence
	Guestbook   *store.Guestbook
	Parser      Parser

	zoom       timeline.Zoom
	zoomSet    bool
	generating atomic.Bool
}

// Entries returns the current collection snapshot.
func (s *Service) Entries() ([]media.Item, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.All(), nil
}

// Timeline recomputes the grouped view for a category filter and
// scale, purely from the current snapshot.
func (s *Service) Timeline(category string, scale timeline.Scale) ([]timeline.Group, error) {
	entries, err := s.Entries()
	if err != nil {
		return nil, err
	}
	return timeline.Aggregate(timeline.Filter(entries, category), scale), nil
}

// NewDraft returns a blank manual draft entry.
func (s *Service) NewDraft() media.Item {
	return media.NewDraft()
}

// Save stores the item through upsert, assigning an id to new drafts.
// It serves both "save edited item" and "save new manual item".
func (s *Service) Save(item media.Item) (media.Item, error) {
	if s.Persistence == nil {
		return media.Item{}, errors.New("app: no persistence configured")
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if err := s.Persistence.Upsert(item); err != nil {
		return item, err
	}
	return item, nil
}

// Remove deletes the entry with the given id.
func (s *Service) Remove(id string) error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	return s.Persistence.Remove(id)
}

// Ingest analyzes the prompt and optional image and inserts the
// resulting entry. Only one ingestion may be in flight at a time; a
// concurrent call gets ErrGenerating. On failure nothing is inserted
// and the error is returned for the caller's manual-entry fallback.
func (s *Service) Ingest(ctx context.Context, prompt string, image []byte, mimeType string) (media.Item, error) {
	if s.Persistence == nil {
		return media.Item{}, errors.New("app: no persistence configured")
	}
	if s.Parser == nil {
		return media.Item{}, errors.New("app: no parser configured")
	}

	if !s.generating.CompareAndSwap(false, true) {
		return media.Item{}, ErrGenerating
	}
	defer s.generating.Store(false)

	item, err := s.Parser.Parse(ctx, prompt, image, mimeType)
	if err != nil {
		return media.Item{}, err
	}

	item.ID = uuid.NewString()
	if len(image) > 0 {
		// The backend does not echo the image; the cover comes from
		// the same upload.
		item.CoverImage = base64.StdEncoding.EncodeToString(image)
	}

	if err := s.Persistence.Insert(item); err != nil {
		return item, err
	}
	return item, nil
}

// Generating reports whether an ingestion call is outstanding.
func (s *Service) Generating() bool {
	return s.generating.Load()
}

// ToggleZoom advances the owned zoom state one step and returns it.
func (s *Service) ToggleZoom() timeline.Zoom {
	if !s.zoomSet {
		s.zoom = timeline.NewZoom()
		s.zoomSet = true
	}
	s.zoom = s.zoom.Advance()
	return s.zoom
}

// Zoom returns the current zoom state without advancing it.
func (s *Service) Zoom() timeline.Zoom {
	if !s.zoomSet {
		return timeline.NewZoom()
	}
	return s.zoom
}

// Sign appends a guestbook message.
func (s *Service) Sign(text string) (guestbook.Message, error) {
	if s.Guestbook == nil {
		return guestbook.Message{}, errors.New("app: no guestbook configured")
	}
	return s.Guestbook.Sign(text)
}

// Messages lists guestbook messages, newest first.
func (s *Service) Messages() ([]guestbook.Message, error) {
	if s.Guestbook == nil {
		return nil, errors.New("app: no guestbook configured")
	}
	return s.Guestbook.Messages(), nil
}

// DeleteMessage removes a guestbook message by id.
func (s *Service) DeleteMessage(id string) error {
	if s.Guestbook == nil {
		return errors.New("app: no guestbook configured")
	}
	return s.Guestbook.Delete(id)
}
