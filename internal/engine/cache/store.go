package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const entryExt = ".json"

// TTL bounds.
const (
	DefaultTTLSeconds = 3600
	MinTTLSeconds     = 60
	MaxTTLSeconds     = 7 * 24 * 3600
)

type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors.
const (
	ErrNotFound   = constError("cache entry not found")
	ErrExpired    = constError("cache entry expired")
	ErrInvalidKey = constError("invalid cache key")
	ErrDisabled   = constError("cache is disabled")
	ErrInvalidTTL = constError("cache TTL out of range")
)

// FileStore keeps entries as JSON files in one directory. It is safe for
// concurrent use within a process.
type FileStore struct {
	dir        string
	enabled    bool
	ttlSeconds int
	now        func() time.Time

	mu sync.RWMutex
}

// NewFileStore opens (creating if needed) a store in dir. A disabled store
// accepts every call and reports ErrDisabled.
func NewFileStore(dir string, enabled bool, ttlSeconds int) (*FileStore, error) {
	if !enabled {
		return &FileStore{now: time.Now}, nil
	}
	if dir == "" {
		return nil, fmt.Errorf("%w: empty cache directory", ErrInvalidKey)
	}
	if ttlSeconds < MinTTLSeconds || ttlSeconds > MaxTTLSeconds {
		return nil, fmt.Errorf("%w: %d (want %d..%d seconds)", ErrInvalidTTL, ttlSeconds, MinTTLSeconds, MaxTTLSeconds)
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	return &FileStore{dir: dir, enabled: true, ttlSeconds: ttlSeconds, now: time.Now}, nil
}

// Enabled reports whether the store reads and writes entries.
func (s *FileStore) Enabled() bool { return s.enabled }

// Dir returns the cache directory.
func (s *FileStore) Dir() string { return s.dir }

// Get returns the entry for key. Expired entries are deleted and reported as
// ErrExpired.
func (s *FileStore) Get(key string) (*Entry, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	data, err := os.ReadFile(path)
	s.mu.RUnlock()
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading cache entry: %w", err)
	}

	var e Entry
	if err = json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("decoding cache entry: %w", err)
	}
	if e.ExpiredAt(s.now()) {
		s.mu.Lock()
		_ = os.Remove(path)
		s.mu.Unlock()
		return nil, ErrExpired
	}
	return &e, nil
}

// Set writes data under key, replacing any existing entry.
func (s *FileStore) Set(key string, data json.RawMessage) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(NewEntry(key, data, s.ttlSeconds, s.now()))
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Write then rename so readers never see a partial file.
	tmp := path + ".tmp"
	if err = os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}
	if err = os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("renaming cache entry: %w", err)
	}
	return nil
}

// Clear removes every entry.
func (s *FileStore) Clear() error {
	return s.sweep(func(*Entry) bool { return true })
}

// CleanupExpired removes expired and unreadable entries.
func (s *FileStore) CleanupExpired() error {
	now := s.now()
	return s.sweep(func(e *Entry) bool { return e == nil || e.ExpiredAt(now) })
}

// Count returns the number of stored entries, expired ones included.
func (s *FileStore) Count() (int, error) {
	if !s.enabled {
		return 0, ErrDisabled
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	names, err := s.entryNames()
	if err != nil {
		return 0, err
	}
	return len(names), nil
}

func (s *FileStore) sweep(remove func(*Entry) bool) error {
	if !s.enabled {
		return ErrDisabled
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	names, err := s.entryNames()
	if err != nil {
		return err
	}
	for _, name := range names {
		path := filepath.Join(s.dir, name)

		var e *Entry
		if data, readErr := os.ReadFile(path); readErr == nil {
			var decoded Entry
			if json.Unmarshal(data, &decoded) == nil {
				e = &decoded
			}
		}
		if remove(e) {
			if err = os.Remove(path); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("removing cache entry %s: %w", name, err)
			}
		}
	}
	return nil
}

func (s *FileStore) entryNames() ([]string, error) {
	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading cache directory: %w", err)
	}
	var names []string
	for _, de := range dirEntries {
		if !de.IsDir() && filepath.Ext(de.Name()) == entryExt {
			names = append(names, de.Name())
		}
	}
	return names, nil
}

// path maps a key onto its file. Keys are hex digests, so anything else is
// rejected rather than sanitized.
func (s *FileStore) path(key string) (string, error) {
	if !s.enabled {
		return "", ErrDisabled
	}
	if key == "" {
		return "", ErrInvalidKey
	}
	for _, r := range key {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
			return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}
	return filepath.Join(s.dir, key+entryExt), nil
}
