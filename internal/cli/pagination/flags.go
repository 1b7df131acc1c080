package pagination

import (
	"errors"
	"fmt"
	"strings"
)

// Sort orders and validation limits.
const (
	MaxLimit         = 100000
	DefaultSortField = "index"
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
	DefaultSortOrder = SortOrderAsc
)

// Validation errors.
var (
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'co2:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
	ErrInvalidSortField  = errors.New("invalid sort field")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
)

// Params holds the paging flags. Two modes are supported and are mutually
// exclusive:
//   - Offset-based: --limit and --offset
//   - Page-based: --page and --page-size
//
// A zero Limit means no limit.
type Params struct {
	Limit    int
	Offset   int
	Page     int
	PageSize int
}

// Validate checks bounds and mode consistency.
func (p Params) Validate() error {
	if p.Limit < 0 {
		return errors.New("limit cannot be negative")
	}
	if p.Limit > MaxLimit {
		return fmt.Errorf("limit cannot exceed %d", MaxLimit)
	}
	if p.Offset < 0 {
		return errors.New("offset cannot be negative")
	}
	if p.Page < 0 {
		return errors.New("page cannot be negative")
	}
	if p.PageSize < 0 {
		return errors.New("page-size cannot be negative")
	}

	if p.Page > 0 && (p.Offset > 0 || p.Limit > 0) {
		return errors.New("page and offset/limit parameters are mutually exclusive")
	}
	if p.Page == 0 && p.PageSize > 0 {
		return errors.New("page must be specified when using page-size: page must be >= 1")
	}
	if p.PageSize == 0 && p.Page > 0 {
		return errors.New("page-size must be specified when using page: page-size must be > 0")
	}
	return nil
}

// IsPageBased returns true if page-based paging is active.
func (p Params) IsPageBased() bool {
	return p.Page > 0
}

// IsEnabled returns true if any paging parameter is set.
func (p Params) IsEnabled() bool {
	return p.Limit > 0 || p.Offset > 0 || p.Page > 0
}

// OffsetLimit returns the effective offset and limit; limit 0 means no limit.
//
//nolint:nonamedreturns // Named returns document the pair.
func (p Params) OffsetLimit() (offset, limit int) {
	if p.IsPageBased() {
		return (p.Page - 1) * p.PageSize, p.PageSize
	}
	return p.Offset, p.Limit
}

// Apply returns the window of items selected by p. Page-based requests past
// the end return the last page; offset-based ones return an empty slice.
func Apply[T any](p Params, items []T) []T {
	if len(items) == 0 {
		return items
	}

	offset, limit := p.OffsetLimit()
	if p.IsPageBased() && offset >= len(items) {
		offset = ((len(items) - 1) / p.PageSize) * p.PageSize
	}
	if offset >= len(items) {
		return []T{}
	}

	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// ParseSort parses "field" or "field:order". An empty string selects the
// input order.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(sortStr string) (field, order string, err error) {
	if strings.TrimSpace(sortStr) == "" {
		return DefaultSortField, DefaultSortOrder, nil
	}

	parts := strings.Split(sortStr, ":")
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = DefaultSortOrder
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	if field == "" {
		return "", "", ErrEmptySortField
	}
	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}
	return strings.ToLower(field), order, nil
}
