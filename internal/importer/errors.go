package importer

import (
	"errors"
	"fmt"
)

var (
	ErrMissingColumn = errors.New("missing column")
	ErrInvalidYear   = errors.New("invalid funding year")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrMalformedRow  = errors.New("malformed row")
)

// RowError records why a data row could not be parsed. Row is 1-based and
// does not count the header.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
