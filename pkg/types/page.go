package types

import "fmt"

// Pagination bounds for table reads.
const (
	MinLimit     = 1
	MaxLimit     = 10000
	DefaultLimit = 100
)

// Page holds the limit and offset for a paginated table read.
type Page struct {
	Limit  int
	Offset int
}

// DefaultPage returns the page used when the caller supplies no bounds:
// limit 100, offset 0.
func DefaultPage() Page {
	return Page{Limit: DefaultLimit}
}

// Validate rejects pages outside the accepted range. Values are never
// clamped: a limit of 0 or 10001 is an error, not 1 or 10000.
func (p Page) Validate() error {
	if p.Limit < MinLimit || p.Limit > MaxLimit {
		return fmt.Errorf("limit %d (accepted range %d..%d): %w",
			p.Limit, MinLimit, MaxLimit, ErrLimitOutOfRange)
	}
	if p.Offset < 0 {
		return fmt.Errorf("offset %d (must be >= 0): %w", p.Offset, ErrOffsetOutOfRange)
	}
	return nil
}
