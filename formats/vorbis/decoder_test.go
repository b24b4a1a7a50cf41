// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"io"
	"testing"
)

// fakeOgg serves canned float32 values in whole-frame multiples, the way
// oggvorbis.Reader does.
type fakeOgg struct {
	rate     int
	channels int
	values   []float32
	pos      int
}

func (f *fakeOgg) SampleRate() int { return f.rate }
func (f *fakeOgg) Channels() int   { return f.channels }

func (f *fakeOgg) Read(dst []float32) (int, error) {
	if f.pos >= len(f.values) {
		return 0, io.EOF
	}
	n := copy(dst, f.values[f.pos:])
	n = n / f.channels * f.channels
	f.pos += n
	return n, nil
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	values := []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}
	s := &source{dec: &fakeOgg{rate: 48000, channels: 2, values: values}, channels: 2}

	if s.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", s.SampleRate())
	}
	if s.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", s.Channels())
	}

	got := make([]float32, 0, len(values))
	// An odd destination length forces the whole-frame trim.
	dst := make([]float32, 5)
	for {
		n, err := s.ReadSamples(dst)
		if n%2 != 0 {
			t.Fatalf("ReadSamples() returned %d values, not a whole frame count", n)
		}
		got = append(got, dst[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(got) != len(values) {
		t.Fatalf("read %d values, want %d", len(got), len(values))
	}
	for i, v := range values {
		if got[i] != v {
			t.Errorf("value %d = %v, want %v", i, got[i], v)
		}
	}
}

func TestSource_TinyDestination(t *testing.T) {
	t.Parallel()

	s := &source{dec: &fakeOgg{rate: 48000, channels: 2, values: []float32{1, 2}}, channels: 2}

	// A destination smaller than one frame reads nothing rather than split a
	// frame.
	n, err := s.ReadSamples(make([]float32, 1))
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(short dst) = %d, %v, want 0, nil", n, err)
	}

	n, err = s.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v, want 0, nil", n, err)
	}
}

func TestDecode_InvalidData(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("not an ogg stream"))); err == nil {
		t.Error("Decode() error = nil for garbage input")
	}
}
