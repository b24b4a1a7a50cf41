package playback

import "errors"

var (
	ErrNothingToPlay = errors.New("nothing to play")
)
