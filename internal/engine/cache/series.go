package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rshade/eorx/internal/engine"
	"github.com/rshade/eorx/internal/exergy"
	"github.com/rshade/eorx/internal/logging"
)

// keyVersion changes whenever the cached payload or the balance formulas
// change, invalidating older entries.
const keyVersion = "eorx-series-v1"

// SeriesKey identifies one evaluation of a file.
type SeriesKey struct {
	FileDigest string            `json:"file_digest"`
	Sheet      string            `json:"sheet"`
	Technology exergy.Technology `json:"technology"`
	Mode       engine.Mode       `json:"mode"`
	Parameters exergy.Parameters `json:"parameters"`
}

// Digest returns the hex SHA-256 of the key.
func (k SeriesKey) Digest() (string, error) {
	raw, err := json.Marshal(k)
	if err != nil {
		return "", fmt.Errorf("encoding cache key: %w", err)
	}
	h := sha256.New()
	_, _ = io.WriteString(h, keyVersion)
	_, _ = h.Write(raw)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// FileDigest returns the hex SHA-256 of the file at path.
func FileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err = io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

type seriesPayload struct {
	InputRows int            `json:"input_rows"`
	Rows      []engine.Row   `json:"rows"`
	Warnings  []warningEntry `json:"warnings,omitempty"`
}

type warningEntry struct {
	Index int    `json:"index"`
	Line  int    `json:"line,omitempty"`
	Error string `json:"error"`
}

// SeriesCache stores SeriesResults in a FileStore.
type SeriesCache struct {
	store *FileStore
}

// NewSeriesCache wraps store.
func NewSeriesCache(store *FileStore) *SeriesCache {
	return &SeriesCache{store: store}
}

// Get returns the cached result for key, or ok=false on a miss. Store errors
// other than a miss are logged and treated as a miss.
func (c *SeriesCache) Get(ctx context.Context, key SeriesKey) (*engine.SeriesResult, bool) {
	log := logging.FromContext(ctx)

	digest, err := key.Digest()
	if err != nil {
		return nil, false
	}

	entry, err := c.store.Get(digest)
	if err != nil {
		if !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrDisabled) {
			log.Debug().Ctx(ctx).Str("component", "cache").Err(err).Msg("series cache miss")
		}
		return nil, false
	}

	var p seriesPayload
	if err = json.Unmarshal(entry.Data, &p); err != nil {
		log.Warn().Ctx(ctx).Str("component", "cache").Err(err).Msg("discarding unreadable cache entry")
		return nil, false
	}

	result := &engine.SeriesResult{
		Technology: key.Technology,
		Parameters: key.Parameters,
		Mode:       key.Mode,
		InputRows:  p.InputRows,
		Rows:       p.Rows,
	}
	for _, w := range p.Warnings {
		result.Warnings = append(result.Warnings, engine.RowWarning{Index: w.Index, Line: w.Line, Err: errors.New(w.Error)})
	}

	log.Debug().Ctx(ctx).Str("component", "cache").Str("key", digest[:12]).Int("rows", len(p.Rows)).Msg("series cache hit")
	return result, true
}

// Put stores result under key.
func (c *SeriesCache) Put(ctx context.Context, key SeriesKey, result *engine.SeriesResult) error {
	if !c.store.Enabled() {
		return nil
	}

	digest, err := key.Digest()
	if err != nil {
		return err
	}

	p := seriesPayload{InputRows: result.InputRows, Rows: result.Rows}
	for _, w := range result.Warnings {
		p.Warnings = append(p.Warnings, warningEntry{Index: w.Index, Line: w.Line, Error: w.Err.Error()})
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding series: %w", err)
	}

	if err = c.store.Set(digest, data); err != nil {
		return err
	}
	logging.FromContext(ctx).Debug().Ctx(ctx).Str("component", "cache").Str("key", digest[:12]).Msg("series cached")
	return nil
}
