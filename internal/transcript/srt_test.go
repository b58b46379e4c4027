package transcript

import (
	"errors"
	"strings"
	"testing"
)

const sampleSubtitle = `1
00:00:01,000 --> 00:00:04,000
Hello there

2
00:00:05,500 --> 00:00:08,250
Second cue
continued on a new line
`

func TestParseSubtitle(t *testing.T) {
	segments, err := parseSubtitle(sampleSubtitle, "a.srt")
	if err != nil {
		t.Fatalf("parseSubtitle: %v", err)
	}
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}

	if segments[0].Start != 1 {
		t.Fatalf("expected start 1, got %v", segments[0].Start)
	}
	if segments[0].End == nil || *segments[0].End != 4 {
		t.Fatalf("expected end 4, got %v", segments[0].End)
	}
	if segments[1].Start != 5.5 {
		t.Fatalf("expected start 5.5, got %v", segments[1].Start)
	}
	if segments[1].Text != "Second cue continued on a new line" {
		t.Fatalf("multi-line text must join with spaces, got %q", segments[1].Text)
	}
}

func TestParseSubtitleCRLF(t *testing.T) {
	crlf := strings.ReplaceAll(sampleSubtitle, "\n", "\r\n")
	fromLF, err := parseSubtitle(sampleSubtitle, "a.srt")
	if err != nil {
		t.Fatalf("parse LF: %v", err)
	}
	fromCRLF, err := parseSubtitle(crlf, "a.srt")
	if err != nil {
		t.Fatalf("parse CRLF: %v", err)
	}
	if len(fromLF) != len(fromCRLF) {
		t.Fatalf("segment counts differ: %d vs %d", len(fromLF), len(fromCRLF))
	}
	for i := range fromLF {
		if fromLF[i].Start != fromCRLF[i].Start || fromLF[i].Text != fromCRLF[i].Text {
			t.Fatalf("segment %d differs between line ending styles", i)
		}
	}
}

func TestParseSubtitleDotMilliseconds(t *testing.T) {
	content := "1\n00:00:01.500 --> 00:00:02.750\nDot style\n"
	segments, err := parseSubtitle(content, "a.srt")
	if err != nil {
		t.Fatalf("parseSubtitle: %v", err)
	}
	if len(segments) != 1 || segments[0].Start != 1.5 {
		t.Fatalf("expected start 1.5, got %+v", segments)
	}
}

func TestParseSubtitleSkipsMalformedBlocks(t *testing.T) {
	content := "stray line\n\n1\nno arrow here\ntext\n\n2\n00:00:01,000 --> 00:00:02,000\nKept\n"
	segments, err := parseSubtitle(content, "a.srt")
	if err != nil {
		t.Fatalf("parseSubtitle: %v", err)
	}
	if len(segments) != 1 || segments[0].Text != "Kept" {
		t.Fatalf("expected the one valid block, got %+v", segments)
	}
}

func TestParseSubtitleMalformedTimecodeFails(t *testing.T) {
	content := "1\n00:00 --> 00:00:02,000\ntext\n"
	_, err := parseSubtitle(content, "a.srt")
	if !errors.Is(err, ErrMalformedTimestamp) {
		t.Fatalf("expected ErrMalformedTimestamp, got %v", err)
	}
}

func TestParseSubtitleEmptyTextSkipped(t *testing.T) {
	content := "1\n00:00:01,000 --> 00:00:02,000\n \n\n2\n00:00:03,000 --> 00:00:04,000\nWords\n"
	segments, err := parseSubtitle(content, "a.srt")
	if err != nil {
		t.Fatalf("parseSubtitle: %v", err)
	}
	if len(segments) != 1 || segments[0].Text != "Words" {
		t.Fatalf("expected blank-text cue skipped, got %+v", segments)
	}
}
