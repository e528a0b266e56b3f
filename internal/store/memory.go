package store

import (
	"encoding/json"
	"fmt"

	"github.com/dyluth/lore/pkg/playbook"
)

// MemStore is an in-memory Store for tests. It round-trips documents through
// JSON so tests observe the same serialization behavior as FileStore without
// touching a filesystem.
type MemStore struct {
	doc []byte
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Path returns a placeholder path for messages that reference the store.
func (s *MemStore) Path() string {
	return "(memory)"
}

// Exists reports whether a document has been saved.
func (s *MemStore) Exists() bool {
	return s.doc != nil
}

// Load returns the saved document, or a fresh empty playbook when nothing
// has been saved yet.
func (s *MemStore) Load() (*playbook.Playbook, error) {
	if s.doc == nil {
		return playbook.New(playbook.Timestamp()), nil
	}

	var pb playbook.Playbook
	if err := json.Unmarshal(s.doc, &pb); err != nil {
		return nil, fmt.Errorf("failed to parse playbook: %w", err)
	}
	if pb.Bullets == nil {
		pb.Bullets = []playbook.Bullet{}
	}

	return &pb, nil
}

// Save serializes and retains the full document.
func (s *MemStore) Save(pb *playbook.Playbook) error {
	if pb.Bullets == nil {
		pb.Bullets = []playbook.Bullet{}
	}

	data, err := json.MarshalIndent(pb, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal playbook: %w", err)
	}

	s.doc = data
	return nil
}
