package audiosplit

import (
	"math"
	"path/filepath"
	"testing"
)

func TestPlanByTime(t *testing.T) {
	spans := planByTime(4000, 1800)
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %d", len(spans))
	}
	if spans[0].start != 0 || spans[0].duration != 1800 {
		t.Fatalf("unexpected first span %+v", spans[0])
	}
	if spans[2].start != 3600 || spans[2].duration != 400 {
		t.Fatalf("expected short final span, got %+v", spans[2])
	}
}

func TestPlanByTimeExactMultiple(t *testing.T) {
	spans := planByTime(3600, 1800)
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	for _, sp := range spans {
		if sp.duration != 1800 {
			t.Fatalf("expected equal spans, got %+v", sp)
		}
	}
}

func TestPlanBySilence(t *testing.T) {
	// Silence at 500 and 900 falls under the limit and is skipped; 1900
	// crosses it and becomes the first cut. The final point closes the
	// last chunk at the end of the file.
	spans := planBySilence(3000, 1800, []float64{500, 900, 1900, 2500})
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %+v", spans)
	}
	if spans[0].start != 0 || spans[0].duration != 1900 {
		t.Fatalf("unexpected first span %+v", spans[0])
	}
	if spans[1].start != 1900 || spans[1].duration != 1100 {
		t.Fatalf("unexpected second span %+v", spans[1])
	}
}

func TestPlanBySilenceLastPointClosesAtTotal(t *testing.T) {
	spans := planBySilence(1000, 1800, []float64{300, 600})
	if len(spans) != 1 {
		t.Fatalf("expected one span covering the file, got %+v", spans)
	}
	if spans[0].start != 0 || spans[0].duration != 1000 {
		t.Fatalf("unexpected span %+v", spans[0])
	}
}

func TestNewSplitterFillsDefaults(t *testing.T) {
	s := NewSplitter("/usr/bin/ffmpeg", Options{}, nil)
	if s.opts.MaxChunkSeconds != 1800 {
		t.Fatalf("expected default max chunk seconds, got %d", s.opts.MaxChunkSeconds)
	}
	if s.opts.NoiseFloorDB != -40 {
		t.Fatalf("expected default noise floor, got %d", s.opts.NoiseFloorDB)
	}
	if s.opts.MinSilenceSeconds != 1.0 {
		t.Fatalf("expected default min silence, got %v", s.opts.MinSilenceSeconds)
	}
	if s.opts.AudioFormat != "mp3" || s.opts.AudioBitrate != "128k" {
		t.Fatalf("expected default audio format and bitrate, got %s/%s", s.opts.AudioFormat, s.opts.AudioBitrate)
	}
}

func TestNewSplitterKeepsExplicitOptions(t *testing.T) {
	opts := Options{
		MaxChunkSeconds:   600,
		SilenceDetection:  true,
		NoiseFloorDB:      -30,
		MinSilenceSeconds: 0.5,
		AudioFormat:       "wav",
		AudioBitrate:      "192k",
	}
	s := NewSplitter("/usr/bin/ffmpeg", opts, nil)
	if s.opts != opts {
		t.Fatalf("expected options %#v, got %#v", opts, s.opts)
	}
}

func TestParseSilencePoints(t *testing.T) {
	output := `[silencedetect @ 0x5555] silence_start: 10.2
[silencedetect @ 0x5555] silence_end: 12.5 | silence_duration: 2.3
[silencedetect @ 0x5555] silence_end: 12.55 | silence_duration: 0.05
[silencedetect @ 0x5555] silence_end: 40.0 | silence_duration: 1.0
garbage line
[silencedetect @ 0x5555] silence_end: not-a-number | silence_duration: 1.0
`
	points := parseSilencePoints(output)
	if len(points) != 2 {
		t.Fatalf("expected near-duplicates collapsed, got %v", points)
	}
	if math.Abs(points[0]-12.5) > 1e-9 || math.Abs(points[1]-40.0) > 1e-9 {
		t.Fatalf("unexpected points %v", points)
	}
}

func TestParseSilencePointsSorts(t *testing.T) {
	output := "silence_end: 30.0 |\nsilence_end: 10.0 |\n"
	points := parseSilencePoints(output)
	if len(points) != 2 || points[0] != 10 || points[1] != 30 {
		t.Fatalf("expected sorted points, got %v", points)
	}
}

func TestParseDuration(t *testing.T) {
	output := `Input #0, mp3, from 'long.mp3':
  Duration: 01:02:03.50, start: 0.000000, bitrate: 128 kb/s
`
	duration, err := parseDuration(output)
	if err != nil {
		t.Fatalf("parseDuration: %v", err)
	}
	if math.Abs(duration-3723.5) > 1e-9 {
		t.Fatalf("expected 3723.5, got %v", duration)
	}
}

func TestParseDurationMissing(t *testing.T) {
	if _, err := parseDuration("no metadata here"); err == nil {
		t.Fatal("expected error when duration line is absent")
	}
}

func TestCodecFor(t *testing.T) {
	cases := map[string]string{
		"mp3":  "libmp3lame",
		"wav":  "pcm_s16le",
		"flac": "flac",
		"ogg":  "libvorbis",
		"m4a":  "aac",
	}
	for format, want := range cases {
		if got := codecFor(format); got != want {
			t.Fatalf("codecFor(%q) = %q, want %q", format, got, want)
		}
	}
}

func TestSegmentsDir(t *testing.T) {
	got := segmentsDir(filepath.Join("/recordings", "standup.mp3"))
	want := filepath.Join("/recordings", "standup_segments")
	if got != want {
		t.Fatalf("segmentsDir = %q, want %q", got, want)
	}
}
