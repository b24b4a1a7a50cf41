// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/romanurban/audio-cropper/pcm"
)

// Collect drains src completely and returns the signal as a planar buffer.
// The editor core works on whole buffers; streaming sources only exist at
// the decode boundary.
func Collect(src Source) (*pcm.Buffer, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, ErrDecodeFailed
	}

	var interleaved []float32
	buf := make([]float32, 4096*channels)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			interleaved = append(interleaved, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	// Drop a ragged tail rather than fail: a truncated final frame means a
	// malformed stream, not a useless one.
	interleaved = interleaved[:len(interleaved)/channels*channels]

	return pcm.FromInterleaved(src.SampleRate(), channels, interleaved)
}
