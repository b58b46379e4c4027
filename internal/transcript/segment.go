package transcript

import "strings"

// Format identifies a transcription file format.
type Format string

const (
	FormatSubtitle Format = "srt"
	FormatText     Format = "txt"
	FormatMarkdown Format = "md"
)

// ParseFormat maps user-facing format names onto a Format. Unrecognized
// values fall back to plain text, mirroring the behaviour of the merge
// options default.
func ParseFormat(value string) Format {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "srt", "subtitle", "subtitles":
		return FormatSubtitle
	case "md", "markdown":
		return FormatMarkdown
	default:
		return FormatText
	}
}

// Extension returns the file extension (without dot) for the format.
func (f Format) Extension() string {
	switch f {
	case FormatSubtitle:
		return "srt"
	case FormatMarkdown:
		return "md"
	default:
		return "txt"
	}
}

// Segment is one timed unit of transcript text. End is nil when the source
// carried no usable end time. FileIndex records the segment's position in
// its source file and breaks ties during the global time sort.
type Segment struct {
	Start     float64
	End       *float64
	Text      string
	FileIndex int
	Filename  string
}

// shifted returns a copy of the segment with both times moved by offset.
// The receiver is left untouched so a file's stored segments survive the
// merge unchanged.
func (s Segment) shifted(offset float64) Segment {
	out := s
	out.Start += offset
	if s.End != nil {
		end := *s.End + offset
		out.End = &end
	}
	return out
}

// File is one parsed transcription file. Sequence is the ordering key taken
// from the filename; HasSequence is false when the name carries no digits,
// which sorts the file after every keyed file.
type File struct {
	Path        string
	Filename    string
	Sequence    int
	HasSequence bool
	Format      Format
	Segments    []Segment
}

// MergeOptions configures a merge run.
type MergeOptions struct {
	OutputFormat      Format
	TimeOffsetSeconds float64
	RemoveTimestamps  bool
	AddFileMarkers    bool
}

// DefaultMergeOptions returns the engine defaults: plain text output, no
// starting offset, timestamps kept, file markers on.
func DefaultMergeOptions() MergeOptions {
	return MergeOptions{
		OutputFormat:      FormatText,
		TimeOffsetSeconds: 0,
		RemoveTimestamps:  false,
		AddFileMarkers:    true,
	}
}
