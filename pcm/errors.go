package pcm

import "errors"

var (
	ErrInvalidFormat         = errors.New("invalid buffer format")
	ErrChannelLengthMismatch = errors.New("channel lengths must match")
)
