package transcript

import (
	"fmt"
	"strings"
	"time"
)

// defaultCueSeconds pads subtitle cues whose segment carries no end time.
const defaultCueSeconds = 5.0

// renderSubtitle serializes segments as numbered subtitle blocks separated
// by blank lines.
func renderSubtitle(segments []Segment, opts MergeOptions) string {
	var out strings.Builder

	for index, segment := range segments {
		end := segment.Start + defaultCueSeconds
		if segment.End != nil {
			end = *segment.End
		}

		fmt.Fprintf(&out, "%d\n", index+1)
		fmt.Fprintf(&out, "%s --> %s\n", subtitleTimestamp(segment.Start), subtitleTimestamp(end))
		if opts.AddFileMarkers {
			fmt.Fprintf(&out, "[%s] %s\n\n", segment.Filename, segment.Text)
		} else {
			fmt.Fprintf(&out, "%s\n\n", segment.Text)
		}
	}
	return out.String()
}

// renderText serializes segments one per line with optional leading
// timestamp and filename markers.
func renderText(segments []Segment, opts MergeOptions) string {
	var out strings.Builder

	for _, segment := range segments {
		if !opts.RemoveTimestamps {
			fmt.Fprintf(&out, "[%s] ", clockTimestamp(segment.Start))
		}
		if opts.AddFileMarkers {
			fmt.Fprintf(&out, "[%s] ", segment.Filename)
		}
		fmt.Fprintf(&out, "%s\n", segment.Text)
	}
	return out.String()
}

// renderMarkdown serializes segments under a fixed title, emitting a
// per-file heading whenever the source filename changes.
func renderMarkdown(segments []Segment, opts MergeOptions, now time.Time) string {
	var out strings.Builder
	out.WriteString("# Merged Transcription\n\n")
	fmt.Fprintf(&out, "*Generated on: %s*\n\n", now.UTC().Format("2006-01-02 15:04:05 UTC"))

	currentFile := ""
	for _, segment := range segments {
		if opts.AddFileMarkers && segment.Filename != currentFile {
			currentFile = segment.Filename
			fmt.Fprintf(&out, "## %s\n\n", currentFile)
		}
		if !opts.RemoveTimestamps {
			fmt.Fprintf(&out, "**[%s]** ", clockTimestamp(segment.Start))
		}
		fmt.Fprintf(&out, "%s\n\n", segment.Text)
	}
	return out.String()
}

// subtitleTimestamp formats seconds as HH:MM:SS,mmm.
func subtitleTimestamp(seconds float64) string {
	total := int64(seconds)
	millis := int64((seconds - float64(total)) * 1000)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", total/3600, (total%3600)/60, total%60, millis)
}

// clockTimestamp formats seconds as MM:SS, adding the hours field only when
// it is non-zero.
func clockTimestamp(seconds float64) string {
	total := int64(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
