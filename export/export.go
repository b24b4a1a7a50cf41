// SPDX-License-Identifier: EPL-2.0

package export

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/romanurban/audio-cropper/formats/wav"
	"github.com/romanurban/audio-cropper/pcm"
)

// Bitrates is the fixed set of lossy bitrates (kbps) the editor offers.
var Bitrates = []int{128, 192, 256, 320}

// DefaultTimeout bounds how long a lossy encode may run before the export is
// treated as failed.
const DefaultTimeout = 30 * time.Second

// Encoder turns a finished PCM range into an encoded byte blob. The bitrate
// is an opaque quality parameter from Bitrates. Implementations may run
// off-thread; the exporter always hands them a detached copy, so a running
// encode is unaffected by later edits to the live buffer.
type Encoder interface {
	Encode(ctx context.Context, buf *pcm.Buffer, bitrateKbps int) ([]byte, error)
}

// Options configures a lossy export.
type Options struct {
	Bitrate int           // kbps, one of Bitrates
	Timeout time.Duration // zero means DefaultTimeout
}

// Exporter owns the injected lossy encoder handle. The WAV path is built in.
type Exporter struct {
	enc Encoder
}

// New builds an exporter. enc may be nil when only WAV export is needed.
func New(enc Encoder) *Exporter {
	return &Exporter{enc: enc}
}

// WAV encodes the [start, end) range of buf as a canonical 16-bit RIFF/WAVE
// blob. The range is copied out first, so the result is detached from the
// live buffer.
func (e *Exporter) WAV(buf *pcm.Buffer, start, end float64) ([]byte, error) {
	sub := buf.Slice(start, end)
	var out bytes.Buffer
	if err := wav.Encode(&out, sub.SampleRate(), sub.Channels(), sub.Int16Interleaved()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeFailed, err)
	}
	return out.Bytes(), nil
}

// Lossy encodes the [start, end) range with the injected encoder. The encode
// runs on a detached copy and is not cancelled when the wait expires; the
// exporter merely stops waiting and reports ErrEncodeTimeout, leaving
// in-memory state untouched so the caller may retry.
func (e *Exporter) Lossy(ctx context.Context, buf *pcm.Buffer, start, end float64, opts Options) ([]byte, error) {
	if e.enc == nil {
		return nil, ErrNoEncoder
	}
	if !validBitrate(opts.Bitrate) {
		return nil, ErrInvalidBitrate
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	sub := buf.Slice(start, end)

	type result struct {
		data []byte
		err  error
	}
	done := make(chan result, 1)
	go func() {
		data, err := e.enc.Encode(ctx, sub, opts.Bitrate)
		done <- result{data: data, err: err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case r := <-done:
		if r.err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodeFailed, r.err)
		}
		return r.data, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrEncodeFailed, ctx.Err())
	case <-timer.C:
		return nil, ErrEncodeTimeout
	}
}

func validBitrate(kbps int) bool {
	for _, b := range Bitrates {
		if b == kbps {
			return true
		}
	}
	return false
}
