// Package store provides persistence for the playbook document. The backing
// form is a single JSON file under a project-local directory; every operation
// reads the whole document, mutates it in memory, and writes the whole
// document back. There is no partial update and no cross-process locking -
// concurrent invocations race and the last writer wins, an accepted
// limitation for this tool's sequential single-user usage.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dyluth/lore/pkg/playbook"
)

const (
	// DefaultDir is the playbook directory created under the working directory
	DefaultDir = ".playbook"

	// FileName is the document file name inside the playbook directory
	FileName = "playbook.json"
)

// Store is the persistence boundary for a playbook document. Operations
// accept a Store rather than touching the filesystem directly, so tests can
// substitute an in-memory implementation.
type Store interface {
	// Load returns the stored document, or an empty default when none has
	// been persisted yet. Loading the default does not create the file.
	Load() (*playbook.Playbook, error)

	// Save writes the full document, creating the backing location if needed.
	Save(pb *playbook.Playbook) error

	// Exists reports whether a document has been persisted.
	Exists() bool

	// Path identifies the backing location for user-facing messages.
	Path() string
}

// FileStore persists the playbook as indented JSON at <dir>/playbook.json.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore rooted at dir, or at the default
// .playbook directory when dir is empty.
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = DefaultDir
	}
	return &FileStore{path: filepath.Join(dir, FileName)}
}

// Path returns the document's file path.
func (s *FileStore) Path() string {
	return s.path
}

// Exists reports whether the document file is present on disk.
func (s *FileStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads and parses the document. A missing file yields a fresh empty
// playbook without creating anything on disk.
func (s *FileStore) Load() (*playbook.Playbook, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return playbook.New(playbook.Timestamp()), nil
		}
		return nil, fmt.Errorf("failed to read playbook: %w", err)
	}

	var pb playbook.Playbook
	if err := json.Unmarshal(data, &pb); err != nil {
		return nil, fmt.Errorf("failed to parse playbook %s: %w", s.path, err)
	}

	// A hand-edited document may omit the bullets key entirely
	if pb.Bullets == nil {
		pb.Bullets = []playbook.Bullet{}
	}

	return &pb, nil
}

// Save writes the full document, creating the playbook directory first. The
// write is not atomic: a crash mid-write can corrupt the file.
func (s *FileStore) Save(pb *playbook.Playbook) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create playbook directory: %w", err)
	}

	// Both top-level keys must be present in the saved document
	if pb.Bullets == nil {
		pb.Bullets = []playbook.Bullet{}
	}

	data, err := json.MarshalIndent(pb, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal playbook: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write playbook: %w", err)
	}

	return nil
}
