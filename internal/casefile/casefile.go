// Package casefile persists the current RTI case as a JSON snapshot on disk so
// every workflow command can pick up where the previous one left off.
package casefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rtiworkbench/rti-cli/internal/models"
)

const (
	// SnapshotFile is the fixed name of the case snapshot inside the workspace
	SnapshotFile = "case.json"
	// LockFile guards against concurrent mutating invocations
	LockFile = "case.lock"
)

var (
	// ErrNoCase indicates no case snapshot exists in the workspace
	ErrNoCase = errors.New("no case in progress")
	// ErrLocked indicates another invocation currently holds the case lock
	ErrLocked = errors.New("another rti command is already running")
)

// Store reads and writes case snapshots under a workspace directory
type Store struct {
	dir string
}

// NewStore creates a store rooted at the given workspace directory
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the snapshot file path
func (s *Store) Path() string {
	return filepath.Join(s.dir, SnapshotFile)
}

// Save writes the case snapshot, overwriting any previous one. The write goes
// through a temp file and rename so a crash never leaves a half-written snapshot.
func (s *Store) Save(c *models.Case) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create workspace directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal case: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, SnapshotFile+".*")
	if err != nil {
		return fmt.Errorf("failed to create snapshot temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close snapshot temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.Path()); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}

	return nil
}

// Load reads the current case snapshot. Returns ErrNoCase when none exists.
func (s *Store) Load() (*models.Case, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoCase
		}
		return nil, fmt.Errorf("failed to read case snapshot: %w", err)
	}

	var c models.Case
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse case snapshot: %w", err)
	}

	return &c, nil
}

// Clear removes the case snapshot. Clearing an empty workspace is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.Path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove case snapshot: %w", err)
	}
	return nil
}

// Lock acquires the workspace lock held for the duration of a mutating command.
// Returns ErrLocked while another invocation holds it. The returned release
// function removes the lock.
func (s *Store) Lock() (func(), error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create workspace directory: %w", err)
	}

	lockPath := filepath.Join(s.dir, LockFile)
	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if os.IsExist(err) {
			return nil, ErrLocked
		}
		return nil, fmt.Errorf("failed to acquire case lock: %w", err)
	}

	fmt.Fprintf(f, "%d\n", os.Getpid())
	f.Close()

	return func() {
		os.Remove(lockPath)
	}, nil
}
