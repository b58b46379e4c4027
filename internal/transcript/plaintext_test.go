package transcript

import (
	"math"
	"testing"
)

func TestParseTextRangeTimestamps(t *testing.T) {
	segments := parseText("[00:00-01:06] Добрый день, коллеги", "a.txt")
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	seg := segments[0]
	if seg.Start != 0 {
		t.Fatalf("expected start 0, got %v", seg.Start)
	}
	if seg.End == nil || *seg.End != 66 {
		t.Fatalf("expected end 66, got %v", seg.End)
	}
	if seg.Text != "Добрый день, коллеги" {
		t.Fatalf("expected timestamp stripped, got %q", seg.Text)
	}
}

func TestParseTextRangeHHMMSS(t *testing.T) {
	segments := parseText("[01:00:00-01:30:30] second hour", "a.txt")
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	if segments[0].Start != 3600 {
		t.Fatalf("expected start 3600, got %v", segments[0].Start)
	}
	if segments[0].End == nil || *segments[0].End != 5430 {
		t.Fatalf("expected end 5430, got %v", segments[0].End)
	}
}

func TestParseTextSingleTimestamps(t *testing.T) {
	cases := []struct {
		name  string
		line  string
		start float64
		text  string
	}{
		{"bracketed hms", "[01:02:03] hello there", 3723, "hello there"},
		{"bracketed hms millis", "[00:00:05.500] hello", 5.5, "hello"},
		{"bracketed mmss", "[02:30] hello", 150, "hello"},
		{"line start hms", "01:02:03 hello", 3723, "hello"},
		{"line start mmss", "12:34 hello", 754, "hello"},
		{"whisper range", "[00:01:00.000 --> 00:01:05.000] hello", 60, "hello"},
		{"bracketed seconds", "[120] hello", 120, "hello"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			segments := parseText(tc.line, "a.txt")
			if len(segments) != 1 {
				t.Fatalf("expected 1 segment, got %d", len(segments))
			}
			if math.Abs(segments[0].Start-tc.start) > 1e-9 {
				t.Fatalf("expected start %v, got %v", tc.start, segments[0].Start)
			}
			if segments[0].Text != tc.text {
				t.Fatalf("expected text %q, got %q", tc.text, segments[0].Text)
			}
		})
	}
}

func TestParseTextBareNumberIsText(t *testing.T) {
	segments := parseText("В 2024 году выручка выросла", "a.txt")
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	if segments[0].Text != "В 2024 году выручка выросла" {
		t.Fatalf("unbracketed number must stay in the text, got %q", segments[0].Text)
	}
	if segments[0].Start != 0 {
		t.Fatalf("expected cursor start 0, got %v", segments[0].Start)
	}
}

func TestParseTextBracketedSecondsOverHourKeepsCursor(t *testing.T) {
	content := "[60] first line\n[7200] second line"
	segments := parseText(content, "a.txt")
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	// The over-limit value is rejected as a timestamp but still stripped
	// from the text, and the running cursor carries over.
	if segments[1].Start != 60 {
		t.Fatalf("expected second segment to keep cursor 60, got %v", segments[1].Start)
	}
	if segments[1].Text != "second line" {
		t.Fatalf("expected bracketed token stripped, got %q", segments[1].Text)
	}
}

func TestParseTextStripsOnlyFirstTimestamp(t *testing.T) {
	segments := parseText("[01:00] meeting starts at [02:00] sharp", "a.txt")
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	if segments[0].Text != "meeting starts at [02:00] sharp" {
		t.Fatalf("later timestamps are text, got %q", segments[0].Text)
	}
}

func TestParseTextSpeakerLabelOnlyLineSkipped(t *testing.T) {
	segments := parseText("[00:10] Speaker:\n[00:20] actual words", "a.txt")
	if len(segments) != 1 {
		t.Fatalf("expected bare label line to be dropped, got %d segments", len(segments))
	}
	if segments[0].Text != "actual words" {
		t.Fatalf("unexpected text %q", segments[0].Text)
	}
}

func TestParseTextCursorAdvancesByEstimate(t *testing.T) {
	// 300 words at 150 wpm is 120 seconds.
	words := make([]byte, 0, 600)
	for i := 0; i < 300; i++ {
		words = append(words, 'w', ' ')
	}
	content := string(words) + "\nsecond line"
	segments := parseText(content, "a.txt")
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if math.Abs(segments[1].Start-120) > 1e-9 {
		t.Fatalf("expected cursor at 120, got %v", segments[1].Start)
	}
}

func TestParseTextMinimumOneSecondEstimate(t *testing.T) {
	segments := parseText("hi\nthere", "a.txt")
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if segments[1].Start != 1 {
		t.Fatalf("expected one second floor, got start %v", segments[1].Start)
	}
}

func TestParseTextFallbackSegment(t *testing.T) {
	segments := parseText(":\n:", "a.txt")
	if len(segments) != 1 {
		t.Fatalf("expected fallback segment, got %d", len(segments))
	}
	if segments[0].Start != 0 {
		t.Fatalf("expected start 0, got %v", segments[0].Start)
	}
}

func TestParseTextEmptyContent(t *testing.T) {
	if segments := parseText("   \n\n", "a.txt"); segments != nil {
		t.Fatalf("expected no segments, got %d", len(segments))
	}
}
