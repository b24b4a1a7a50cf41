package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrOnlyPCMSupported     = errors.New("only PCM WAV supported")
	ErrInvalidEncodeFormat  = errors.New("invalid sample rate or channel count")
)
