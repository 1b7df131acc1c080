package batch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Chunk sizing.
const (
	// DefaultChunkSize is the number of items per chunk when none is configured.
	DefaultChunkSize = 256

	// MinChunkSize is the smallest accepted chunk size.
	MinChunkSize = 1

	// MaxChunkSize is the largest accepted chunk size.
	MaxChunkSize = 10_000
)

type constError string

func (e constError) Error() string { return string(e) }

// Processing errors.
const (
	ErrInvalidChunkSize = constError("chunk size must be between 1 and 10000")
	ErrNilCallback      = constError("chunk callback cannot be nil")
)

// Chunk is a contiguous window of the input slice.
type Chunk[T any] struct {
	// Index is the 0-based chunk number.
	Index int
	// Offset is the input index of Items[0].
	Offset int
	// Items aliases the input slice; callbacks must not retain it.
	Items []T
}

// Func processes one chunk.
type Func[T any] func(ctx context.Context, c Chunk[T]) error

// ProgressFunc is invoked after every completed chunk. It may be called from
// several goroutines when processing concurrently.
type ProgressFunc func(s Snapshot)

// Processor runs a Func over fixed-size chunks of a slice.
type Processor[T any] struct {
	chunkSize  int
	onProgress ProgressFunc
}

// NewProcessor returns a processor that splits input into chunkSize items.
func NewProcessor[T any](chunkSize int) (*Processor[T], error) {
	if chunkSize < MinChunkSize || chunkSize > MaxChunkSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChunkSize, chunkSize)
	}
	return &Processor[T]{chunkSize: chunkSize}, nil
}

// NewProcessorWithDefaults returns a processor using DefaultChunkSize.
func NewProcessorWithDefaults[T any]() *Processor[T] {
	return &Processor[T]{chunkSize: DefaultChunkSize}
}

// WithProgress registers a progress callback.
func (p *Processor[T]) WithProgress(fn ProgressFunc) *Processor[T] {
	p.onProgress = fn
	return p
}

// ChunkSize returns the configured chunk size.
func (p *Processor[T]) ChunkSize() int {
	return p.chunkSize
}

// Process runs fn over each chunk in input order and stops at the first error.
// An empty input is a no-op.
func (p *Processor[T]) Process(ctx context.Context, items []T, fn Func[T]) error {
	if fn == nil {
		return ErrNilCallback
	}

	bounds := p.CalculateBatches(len(items))
	progress := NewProgress(len(items), len(bounds))

	for i, b := range bounds {
		if err := ctx.Err(); err != nil {
			return err
		}

		c := Chunk[T]{Index: i, Offset: b[0], Items: items[b[0]:b[1]]}
		if err := fn(ctx, c); err != nil {
			return fmt.Errorf("chunk %d failed: %w", i, err)
		}
		p.report(progress, len(c.Items))
	}

	return nil
}

// ProcessConcurrent runs fn over the chunks on at most workers goroutines.
// The first error cancels the context passed to the remaining chunks and is
// returned once every started chunk has finished.
func (p *Processor[T]) ProcessConcurrent(ctx context.Context, items []T, fn Func[T], workers int) error {
	if fn == nil {
		return ErrNilCallback
	}
	if workers < 1 {
		workers = 1
	}

	bounds := p.CalculateBatches(len(items))
	progress := NewProgress(len(items), len(bounds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, b := range bounds {
		if gctx.Err() != nil {
			break
		}

		c := Chunk[T]{Index: i, Offset: b[0], Items: items[b[0]:b[1]]}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := fn(gctx, c); err != nil {
				return fmt.Errorf("chunk %d failed: %w", c.Index, err)
			}
			p.report(progress, len(c.Items))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// CalculateBatches returns the [start, end) bounds of every chunk for n items.
func (p *Processor[T]) CalculateBatches(n int) [][2]int {
	if n <= 0 {
		return nil
	}

	total := (n + p.chunkSize - 1) / p.chunkSize
	bounds := make([][2]int, total)
	for i := range total {
		start := i * p.chunkSize
		bounds[i] = [2]int{start, min(start+p.chunkSize, n)}
	}
	return bounds
}

func (p *Processor[T]) report(progress *Progress, n int) {
	progress.Add(n)
	if p.onProgress != nil {
		p.onProgress(progress.Snapshot())
	}
}
