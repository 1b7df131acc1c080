// Package logging builds the zerolog loggers used across eorx and carries
// them, together with a per-run ULID, through context.Context.
//
// Components retrieve their logger with FromContext and tag events with
// Str("component", ...). Every event logged with .Ctx(ctx) is stamped with
// the run_id of the invocation.
package logging
