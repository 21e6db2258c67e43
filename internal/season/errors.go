package season

import (
	"errors"
	"fmt"
)

var (
	ErrParseRejected = errors.New("parse_rejected")
	// ErrOutOfRange is handled like any other rejected input.
	ErrOutOfRange    = fmt.Errorf("out_of_range: %w", ErrParseRejected)
	ErrUnknownHeader = errors.New("unknown_header")
)
