// SPDX-License-Identifier: EPL-2.0

package render

import (
	"testing"

	"github.com/romanurban/audio-cropper/internal/audiotest"
	"github.com/romanurban/audio-cropper/pcm"
)

func TestPeaks(t *testing.T) {
	t.Parallel()

	// 8 frames folded into 4 columns of 2 frames each.
	buf := audiotest.Buffer(8000, 1, 8, func(f, _ int) float32 {
		values := []float32{0.1, -0.3, 0.5, 0.2, -0.8, 0.9, 0.0, -0.1}
		return values[f]
	})

	got := Peaks(buf, 4)
	want := []Peak{
		{Min: -0.3, Max: 0.1},
		{Min: 0.2, Max: 0.5},
		{Min: -0.8, Max: 0.9},
		{Min: -0.1, Max: 0.0},
	}

	if len(got) != len(want) {
		t.Fatalf("got %d columns, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("column %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestPeaks_DownmixesChannels(t *testing.T) {
	t.Parallel()

	// Left 1.0, right -0.5: the mono fold averages to 0.25 everywhere.
	buf := audiotest.Buffer(8000, 2, 4, func(_, c int) float32 {
		if c == 0 {
			return 1.0
		}
		return -0.5
	})

	got := Peaks(buf, 2)
	for i, p := range got {
		if p.Min != 0.25 || p.Max != 0.25 {
			t.Errorf("column %d = %+v, want flat 0.25", i, p)
		}
	}
}

func TestPeaks_FewerFramesThanColumns(t *testing.T) {
	t.Parallel()

	buf := audiotest.ConstantBuffer(8000, 1, 3, 0.5)
	got := Peaks(buf, 100)
	if len(got) != 3 {
		t.Errorf("got %d columns, want one per frame", len(got))
	}
}

func TestPeaks_Degenerate(t *testing.T) {
	t.Parallel()

	if got := Peaks(nil, 10); got != nil {
		t.Error("nil buffer produced columns")
	}
	if got := Peaks(audiotest.SilentBuffer(8000, 1, 10), 0); got != nil {
		t.Error("zero columns produced output")
	}
	if got := Peaks(pcm.New(8000, 1, 0), 10); got != nil {
		t.Error("empty buffer produced columns")
	}
}
