// SPDX-License-Identifier: EPL-2.0

package session

import (
	"context"

	"github.com/romanurban/audio-cropper/edit"
	"github.com/romanurban/audio-cropper/export"
	"github.com/romanurban/audio-cropper/pcm"
)

// DeleteActive removes the active range (selection or selected chunk) from
// the signal: the samples are compacted out of the buffer and the partition
// closes the gap. Deleting the only remaining chunk is rejected before the
// model is touched. Like every destructive edit it stops playback and clears
// both selection kinds.
func (s *Session) DeleteActive() error {
	if s.buf == nil {
		return ErrNoBuffer
	}
	if _, ok := s.Selection(); !ok {
		if _, ok := s.SelectedChunk(); ok && s.model.Len() == 1 {
			return ErrLastChunkDeletion
		}
	}
	start, end, err := s.activeRange()
	if err != nil {
		return err
	}

	s.ctrl.Stop()
	s.buf = edit.DeleteRange(s.buf, start, end)
	s.model.DeleteRange(start, end)
	s.afterDestructiveEdit()
	return nil
}

// FadeActive applies a cosine fade over the active range.
func (s *Session) FadeActive(dir edit.FadeDirection) error {
	return s.applyEffect(func(start, end float64) {
		s.buf = edit.Fade(s.buf, start, end, dir)
	})
}

// SilenceActive zeroes the active range.
func (s *Session) SilenceActive() error {
	return s.applyEffect(func(start, end float64) {
		s.buf = edit.Silence(s.buf, start, end)
	})
}

// NormalizeActive normalizes the active range to targetDb.
func (s *Session) NormalizeActive(targetDb float64) error {
	return s.applyEffect(func(start, end float64) {
		s.buf = edit.Normalize(s.buf, start, end, targetDb)
	})
}

func (s *Session) applyEffect(fn func(start, end float64)) error {
	if s.buf == nil {
		return ErrNoBuffer
	}
	start, end, err := s.activeRange()
	if err != nil {
		return err
	}
	s.ctrl.Stop()
	fn(start, end)
	s.afterDestructiveEdit()
	return nil
}

// afterDestructiveEdit re-syncs the transport with the (possibly resized)
// buffer and drops both selection kinds.
func (s *Session) afterDestructiveEdit() {
	s.ctrl.SetDuration(s.buf.Duration())
	s.clearRangeSelection()
	s.model.ClearSelection()
}

// PlaySelection plays the active range selection.
func (s *Session) PlaySelection() error {
	if s.buf == nil {
		return ErrNoBuffer
	}
	sel, ok := s.Selection()
	if !ok {
		return ErrNoActiveSelection
	}
	return s.ctrl.PlaySelection(s.buf, sel.Start, sel.End)
}

// PlayChunk plays the selected chunk.
func (s *Session) PlayChunk() error {
	if s.buf == nil {
		return ErrNoBuffer
	}
	c, ok := s.SelectedChunk()
	if !ok {
		return ErrNoActiveSelection
	}
	return s.ctrl.PlayChunk(s.buf, c)
}

// PlayAll plays every chunk in order as one gapless sequence.
func (s *Session) PlayAll() error {
	if s.buf == nil {
		return ErrNoBuffer
	}
	return s.ctrl.PlaySequence(s.buf, s.model.Chunks())
}

// CombinedBuffer concatenates all chunks' sample ranges, gaplessly.
func (s *Session) CombinedBuffer() (*pcm.Buffer, error) {
	if s.buf == nil {
		return nil, ErrNoBuffer
	}
	return s.model.CombinedBuffer(s.buf), nil
}

// ExportActiveWAV encodes the active range as a canonical WAV blob.
func (s *Session) ExportActiveWAV() ([]byte, error) {
	if s.buf == nil {
		return nil, ErrNoBuffer
	}
	start, end, err := s.activeRange()
	if err != nil {
		return nil, err
	}
	return s.exp.WAV(s.buf, start, end)
}

// ExportAllWAV encodes the gapless concatenation of all chunks.
func (s *Session) ExportAllWAV() ([]byte, error) {
	if s.buf == nil {
		return nil, ErrNoBuffer
	}
	combined := s.model.CombinedBuffer(s.buf)
	return s.exp.WAV(combined, 0, combined.Duration())
}

// ExportActiveLossy encodes the active range with the injected encoder.
func (s *Session) ExportActiveLossy(ctx context.Context, opts export.Options) ([]byte, error) {
	if s.buf == nil {
		return nil, ErrNoBuffer
	}
	start, end, err := s.activeRange()
	if err != nil {
		return nil, err
	}
	return s.exp.Lossy(ctx, s.buf, start, end, opts)
}
