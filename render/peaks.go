// SPDX-License-Identifier: EPL-2.0

// Package render prepares data for the external drawing layer. The core
// never touches a surface; it only hands over per-column peak envelopes.
package render

import "github.com/romanurban/audio-cropper/pcm"

// Peak is the min/max sample envelope of one pixel column.
type Peak struct {
	Min float32
	Max float32
}

// Peaks downmixes buf to mono and folds it into columns min/max pairs, one
// per horizontal pixel. Fewer frames than columns yields one column per
// frame.
func Peaks(buf *pcm.Buffer, columns int) []Peak {
	if buf == nil || columns <= 0 {
		return nil
	}
	mono := buf.DownmixMono()
	if len(mono) == 0 {
		return nil
	}
	if columns > len(mono) {
		columns = len(mono)
	}

	out := make([]Peak, columns)
	perCol := float64(len(mono)) / float64(columns)
	for c := 0; c < columns; c++ {
		lo := int(float64(c) * perCol)
		hi := int(float64(c+1) * perCol)
		if hi > len(mono) {
			hi = len(mono)
		}
		if lo >= hi {
			hi = lo + 1
		}
		p := Peak{Min: mono[lo], Max: mono[lo]}
		for _, s := range mono[lo+1 : hi] {
			if s < p.Min {
				p.Min = s
			}
			if s > p.Max {
				p.Max = s
			}
		}
		out[c] = p
	}
	return out
}
