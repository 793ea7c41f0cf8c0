package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Identifiers are the two values that survive a client restart: whether a
// play session was active, and for which character. Cleared on explicit
// return to the main menu or when the resume fallback chain fails.
type Identifiers struct {
	Active        bool   `yaml:"active"`
	CharacterName string `yaml:"character_name"`
}

// Store persists Identifiers as a small YAML file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted identifiers. A missing file is not an error;
// it yields zero Identifiers.
func (st *Store) Load() (Identifiers, error) {
	var ids Identifiers
	data, err := os.ReadFile(st.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ids, nil
		}
		return ids, fmt.Errorf("failed to read session file: %w", err)
	}
	if err := yaml.Unmarshal(data, &ids); err != nil {
		return Identifiers{}, fmt.Errorf("failed to parse session file: %w", err)
	}
	return ids, nil
}

// Save writes the identifiers, creating parent directories as needed.
func (st *Store) Save(ids Identifiers) error {
	data, err := yaml.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to marshal session file: %w", err)
	}
	if dir := filepath.Dir(st.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create session dir: %w", err)
		}
	}
	if err := os.WriteFile(st.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Clear removes the persisted identifiers. A missing file is fine.
func (st *Store) Clear() error {
	if err := os.Remove(st.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to clear session file: %w", err)
	}
	return nil
}
