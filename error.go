package complewise

import "errors"

var (
	ErrStaleComplement = errors.New("stale complement")
	ErrOutOfRange      = errors.New("out of range")
)
