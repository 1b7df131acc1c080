package cache

import (
	"encoding/json"
	"time"
)

// Entry is one cached value with its expiry.
type Entry struct {
	Key        string          `json:"key"`
	Data       json.RawMessage `json:"data"`
	CreatedAt  time.Time       `json:"created_at"`
	ExpiresAt  time.Time       `json:"expires_at"`
	TTLSeconds int             `json:"ttl_seconds"`
}

// NewEntry stamps data with a creation time of now and the given TTL.
func NewEntry(key string, data json.RawMessage, ttlSeconds int, now time.Time) *Entry {
	return &Entry{
		Key:        key,
		Data:       data,
		CreatedAt:  now,
		ExpiresAt:  now.Add(time.Duration(ttlSeconds) * time.Second),
		TTLSeconds: ttlSeconds,
	}
}

// ExpiredAt reports whether the entry has expired at t.
func (e *Entry) ExpiredAt(t time.Time) bool {
	return t.After(e.ExpiresAt)
}
