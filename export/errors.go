package export

import "errors"

var (
	ErrNoEncoder      = errors.New("no lossy encoder configured")
	ErrInvalidBitrate = errors.New("bitrate not in the supported set")
	ErrEncodeFailed   = errors.New("encode failed")
	ErrEncodeTimeout  = errors.New("encode timed out")
)
