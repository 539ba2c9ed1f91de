package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/streambingo/streambingo/internal/card"
	"github.com/streambingo/streambingo/internal/game"
	"github.com/streambingo/streambingo/internal/logger"
	berrors "github.com/streambingo/streambingo/pkg/errors"
)

const (
	cardsFileName    = "cards.json"
	progressFileName = "progress.json"
	markerFileName   = "initialized"

	fileVersion = "1.0"
)

// libraryFile is the JSON layout of the card collection on disk.
type libraryFile struct {
	Version string      `json:"version"`
	Cards   []card.Card `json:"cards"`
}

// progressFile is the JSON layout of the per-card progress map on disk.
type progressFile struct {
	Version  string                   `json:"version"`
	Progress map[string]game.Progress `json:"progress"`
}

// Store is the durable, synchronous card and progress storage. Data lives in
// two JSON documents plus an initialization marker inside a state directory.
// Reads recover from malformed files by treating them as empty; writes are
// atomic (temp file plus rename). Two processes sharing the directory race
// with last-write-wins semantics, which is acceptable for a single-user
// tool.
type Store struct {
	dir string
	mu  sync.RWMutex
	log *logger.Logger
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string, log *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, berrors.NewStorageError("mkdir", dir, err)
	}
	return &Store{dir: dir, log: log}, nil
}

// Dir returns the state directory backing this store.
func (s *Store) Dir() string {
	return s.dir
}

// ListCards returns every stored card. On the very first invocation ever
// (no cards file and no initialization marker) it seeds the built-in sample
// card, persists it, and writes the marker.
func (s *Store) ListCards() []card.Card {
	s.mu.Lock()
	defer s.mu.Unlock()

	cardsPath := filepath.Join(s.dir, cardsFileName)
	markerPath := filepath.Join(s.dir, markerFileName)

	if _, err := os.Stat(cardsPath); os.IsNotExist(err) {
		if _, markerErr := os.Stat(markerPath); os.IsNotExist(markerErr) {
			seeded := []card.Card{SampleCard()}
			if err := s.writeCards(seeded); err != nil {
				s.log.Error(err, "failed to seed sample card")
				return nil
			}
			if err := os.WriteFile(markerPath, []byte{}, 0644); err != nil {
				s.log.Error(err, "failed to write initialization marker")
			}
			s.log.Info("seeded library with sample card")
			return seeded
		}
		return nil
	}

	return s.readCards()
}

// GetCard retrieves a card by id.
func (s *Store) GetCard(id string) (card.Card, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.readCards() {
		if c.ID == id {
			return c, true
		}
	}
	return card.Card{}, false
}

// UpsertCard inserts the card if its id is unseen, otherwise replaces the
// stored record entirely. Validation is the editor's responsibility, not
// the store's.
func (s *Store) UpsertCard(c card.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards := s.readCards()
	replaced := false
	for i, existing := range cards {
		if existing.ID == c.ID {
			cards[i] = c
			replaced = true
			break
		}
	}
	if !replaced {
		cards = append(cards, c)
	}

	return s.writeCards(cards)
}

// DeleteCard removes the card if present (no-op otherwise) and cascades to
// its progress record so no orphan survives.
func (s *Store) DeleteCard(id string) error {
	s.mu.Lock()
	cards := s.readCards()
	filtered := cards[:0]
	for _, c := range cards {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}
	err := s.writeCards(filtered)
	s.mu.Unlock()

	if clearErr := s.ClearProgress(id); clearErr != nil && err == nil {
		err = clearErr
	}
	return err
}

// GetProgress returns the stored progress for a card, if any.
func (s *Store) GetProgress(cardID string) (game.Progress, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.readProgress()[cardID]
	return p, ok
}

// SaveProgress upserts the progress record keyed by its card id.
func (s *Store) SaveProgress(p game.Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.readProgress()
	all[p.CardID] = p
	return s.writeProgress(all)
}

// ClearProgress removes the progress record for a card; no-op when absent.
func (s *Store) ClearProgress(cardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.readProgress()
	if _, ok := all[cardID]; !ok {
		return nil
	}
	delete(all, cardID)
	return s.writeProgress(all)
}

// readCards loads the card collection, treating a missing or malformed file
// as an empty library. Corruption is logged but never surfaced.
func (s *Store) readCards() []card.Card {
	path := filepath.Join(s.dir, cardsFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Error(err, "failed to read card library")
		}
		return nil
	}

	var file libraryFile
	if err := json.Unmarshal(data, &file); err != nil {
		s.log.Error(err, "card library is malformed, treating as empty")
		return nil
	}
	return file.Cards
}

func (s *Store) writeCards(cards []card.Card) error {
	if cards == nil {
		cards = []card.Card{}
	}
	return s.writeJSON(cardsFileName, libraryFile{Version: fileVersion, Cards: cards})
}

func (s *Store) readProgress() map[string]game.Progress {
	path := filepath.Join(s.dir, progressFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Error(err, "failed to read progress")
		}
		return map[string]game.Progress{}
	}

	var file progressFile
	if err := json.Unmarshal(data, &file); err != nil {
		s.log.Error(err, "progress file is malformed, treating as empty")
		return map[string]game.Progress{}
	}
	if file.Progress == nil {
		file.Progress = map[string]game.Progress{}
	}
	return file.Progress
}

func (s *Store) writeProgress(all map[string]game.Progress) error {
	return s.writeJSON(progressFileName, progressFile{Version: fileVersion, Progress: all})
}

// writeJSON writes a document atomically: marshal, write to a temporary
// file, rename into place.
func (s *Store) writeJSON(name string, v any) error {
	path := filepath.Join(s.dir, name)

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return berrors.NewStorageError("marshal", path, err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return berrors.NewStorageError("write", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return berrors.NewStorageError("rename", path, err)
	}

	return nil
}
