package stretch

import "errors"

var (
	ErrBadSpeed    = errors.New("speed factor must be positive and finite")
	ErrEmptyStream = errors.New("cannot stretch an empty stream")
)
