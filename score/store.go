// Package score keeps the high score in a small JSON file under the user's
// home directory.
package score

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	DirName  = "score"
	FileName = "score.json"
)

type record struct {
	HighScore int `json:"high_score"`
}

// Store reads and writes <dir>/score.json.
type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

// Default returns the store at <home>/score.
func Default() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("find home directory: %w", err)
	}
	return New(filepath.Join(home, DirName)), nil
}

func (s *Store) Dir() string  { return s.dir }
func (s *Store) Path() string { return filepath.Join(s.dir, FileName) }

// Load returns the stored high score. A missing file is not an error and
// yields 0. An unreadable or malformed file yields 0 and the error; the
// next Save replaces it.
func (s *Store) Load() (int, error) {
	data, err := os.ReadFile(s.Path())
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", s.Path(), err)
	}

	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return 0, fmt.Errorf("decode %s: %w", s.Path(), err)
	}
	if r.HighScore < 0 {
		return 0, fmt.Errorf("decode %s: negative high score %d", s.Path(), r.HighScore)
	}
	return r.HighScore, nil
}

// Save writes score, creating the directory if needed. The file is replaced
// atomically so a crash mid-write leaves the previous record.
func (s *Store) Save(score int) error {
	if score < 0 {
		return fmt.Errorf("save negative high score %d", score)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", s.dir, err)
	}

	data, err := json.MarshalIndent(record{HighScore: score}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode high score: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, FileName+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.Path()); err != nil {
		return fmt.Errorf("replace %s: %w", s.Path(), err)
	}
	return nil
}
