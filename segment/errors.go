package segment

import "errors"

var (
	ErrInvalidSplitPosition = errors.New("split position not strictly inside a chunk")
	ErrNoSuchChunk          = errors.New("no chunk with that id")
)
