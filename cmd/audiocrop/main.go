// SPDX-License-Identifier: EPL-2.0

// Command audiocrop applies editor-core operations to an audio file from the
// command line and exports the result as a canonical 16-bit WAV.
//
// Usage:
//
//	audiocrop -in take.mp3 -split 3.0 -delete 1.0:2.5 -normalize -3 -out take.wav
//
// Ranges are start:end in seconds. Operations run in the listed order:
// splits, delete, fades, silence, normalize, export.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	audiocropper "github.com/romanurban/audio-cropper"
	"github.com/romanurban/audio-cropper/edit"
	"github.com/romanurban/audio-cropper/export"
	"github.com/romanurban/audio-cropper/segment"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
)

func fail(format string, args ...any) {
	red.Fprintf(os.Stderr, "audiocrop: "+format+"\n", args...)
	os.Exit(1)
}

func parseRange(s string) (float64, float64, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("range must be start:end, got %q", s)
	}
	start, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, err
	}
	end, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, err
	}
	if end < start {
		start, end = end, start
	}
	return start, end, nil
}

func main() {
	in := flag.String("in", "", "input audio file (wav, mp3, ogg, aiff)")
	out := flag.String("out", "out.wav", "output WAV file")
	splits := flag.String("split", "", "comma-separated split times in seconds")
	del := flag.String("delete", "", "delete range start:end")
	fadeIn := flag.String("fade-in", "", "fade-in range start:end")
	fadeOut := flag.String("fade-out", "", "fade-out range start:end")
	silence := flag.String("silence", "", "silence range start:end")
	normalize := flag.Float64("normalize", 0, "normalize whole signal to the given dBFS (0 = off)")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	buf, err := audiocropper.LoadFile(*in)
	if err != nil {
		fail("loading %s: %v", *in, err)
	}
	green.Printf("loaded %s: %.2fs, %d ch, %d Hz\n",
		*in, buf.Duration(), buf.Channels(), buf.SampleRate())

	model := segment.NewModel(buf.Duration())
	if *splits != "" {
		for _, f := range strings.Split(*splits, ",") {
			t, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				fail("bad split time %q: %v", f, err)
			}
			if err := model.SplitAt(t); err != nil {
				fail("split at %.3f: %v", t, err)
			}
			yellow.Printf("split at %.3fs\n", t)
		}
	}

	if *del != "" {
		start, end, err := parseRange(*del)
		if err != nil {
			fail("bad delete range: %v", err)
		}
		buf = edit.DeleteRange(buf, start, end)
		model.DeleteRange(start, end)
		yellow.Printf("deleted %.3fs..%.3fs (now %.2fs)\n", start, end, buf.Duration())
	}

	for _, op := range []struct {
		arg  string
		dir  edit.FadeDirection
		name string
	}{
		{*fadeIn, edit.FadeIn, "fade-in"},
		{*fadeOut, edit.FadeOut, "fade-out"},
	} {
		if op.arg == "" {
			continue
		}
		start, end, err := parseRange(op.arg)
		if err != nil {
			fail("bad %s range: %v", op.name, err)
		}
		buf = edit.Fade(buf, start, end, op.dir)
		yellow.Printf("%s %.3fs..%.3fs\n", op.name, start, end)
	}

	if *silence != "" {
		start, end, err := parseRange(*silence)
		if err != nil {
			fail("bad silence range: %v", err)
		}
		buf = edit.Silence(buf, start, end)
		yellow.Printf("silenced %.3fs..%.3fs\n", start, end)
	}

	if *normalize != 0 {
		buf = edit.Normalize(buf, 0, buf.Duration(), *normalize)
		yellow.Printf("normalized to %.1f dBFS\n", *normalize)
	}

	combined := model.CombinedBuffer(buf)
	blob, err := export.New(nil).WAV(combined, 0, combined.Duration())
	if err != nil {
		fail("encoding: %v", err)
	}
	if err := os.WriteFile(*out, blob, 0o644); err != nil {
		fail("writing %s: %v", *out, err)
	}
	green.Printf("wrote %s (%d bytes, %d chunks)\n", *out, len(blob), model.Len())
}
