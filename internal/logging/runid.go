package logging

import (
	"context"
	"crypto/rand"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

type runIDKey struct{}

// NewRunID returns a fresh ULID string.
func NewRunID() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}

// ContextWithRunID stores id in ctx.
func ContextWithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext returns the run id in ctx, or "".
func RunIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

// GetOrGenerateRunID returns the id already in ctx or a new one.
func GetOrGenerateRunID(ctx context.Context) string {
	if id := RunIDFromContext(ctx); id != "" {
		return id
	}
	return NewRunID()
}

// RunIDHook stamps run_id onto events logged with .Ctx(ctx).
type RunIDHook struct{}

// Run implements zerolog.Hook.
func (RunIDHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	if id := RunIDFromContext(e.GetCtx()); id != "" {
		e.Str("run_id", id)
	}
}
