package report

import "errors"

var (
	ErrUnknownKind = errors.New("unknown report kind")
)
