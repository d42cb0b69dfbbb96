// Package store persists the gradebook as a single JSON file.
//
// The whole collection is read at startup and rewritten after every change:
//
//	<data file>            # JSON array of course objects, 4-space indent
//	<data file>.tmp.*      # transient; renamed over the data file on save
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"gradebook/internal/course"
)

// DefaultFile is the data file name used when settings do not name one.
const DefaultFile = "gradebook.json"

// ErrUnreadable marks a data file that exists but could not be used. Load
// wraps it and returns an empty collection alongside.
var ErrUnreadable = errors.New("gradebook file unreadable")

// Store reads and writes the data file at Path.
type Store struct {
	Path string
	log  zerolog.Logger
}

// File returns the path of the data file.
func (s *Store) File() string {
	return s.Path
}

// New returns a Store for path. Nothing touches the disk until Load or Save.
func New(path string, log zerolog.Logger) *Store {
	return &Store{
		Path: path,
		log:  log.With().Str("component", "store").Str("path", path).Logger(),
	}
}

// Load reads the data file. A missing file yields an empty collection and a
// nil error. A file that cannot be read, is not JSON, or does not hold a
// list yields an empty collection and an error wrapping ErrUnreadable.
// Records inside a list are returned as stored, without validation.
func (s *Store) Load() ([]course.Course, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		s.log.Debug().Msg("data file not found, starting empty")
		return []course.Course{}, nil
	}
	if err != nil {
		return s.fallback(fmt.Errorf("%w: read %s: %v", ErrUnreadable, s.Path, err))
	}

	courses, err := decode(data)
	if err != nil {
		return s.fallback(fmt.Errorf("%w: %s: %v", ErrUnreadable, s.Path, err))
	}
	s.log.Debug().Int("courses", len(courses)).Msg("loaded gradebook")
	return courses, nil
}

func (s *Store) fallback(err error) ([]course.Course, error) {
	s.log.Warn().Err(err).Msg("falling back to empty gradebook")
	return []course.Course{}, err
}

// decode requires a top-level JSON array of course objects.
func decode(data []byte) ([]course.Course, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errors.New("top-level value is not a list")
	}
	var courses []course.Course
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if err := dec.Decode(&courses); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if dec.More() {
		return nil, errors.New("trailing content after list")
	}
	if courses == nil {
		courses = []course.Course{}
	}
	return courses, nil
}

// Save overwrites the data file with courses. The new content is written to
// a sibling temp file and renamed into place.
func (s *Store) Save(courses []course.Course) error {
	data, err := encode(courses)
	if err != nil {
		return fmt.Errorf("marshal gradebook: %w", err)
	}
	if err := writeFileAtomic(s.Path, data, 0o644); err != nil {
		s.log.Error().Err(err).Msg("save failed")
		return fmt.Errorf("write %s: %w", s.Path, err)
	}
	s.log.Debug().Int("courses", len(courses)).Msg("saved gradebook")
	return nil
}

func encode(courses []course.Course) ([]byte, error) {
	if courses == nil {
		courses = []course.Course{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(courses); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return nil
}
