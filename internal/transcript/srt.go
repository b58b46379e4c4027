package transcript

import (
	"fmt"
	"strconv"
	"strings"
)

// parseSubtitle splits content on blank-line boundaries and reads each block
// as index line, timecode line, text lines. Blocks shorter than three lines
// or lacking the arrow separator are skipped; a timecode that is present but
// malformed fails the whole file.
func parseSubtitle(content, filename string) ([]Segment, error) {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	blocks := strings.Split(normalized, "\n\n")

	var segments []Segment
	for index, block := range blocks {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 3 {
			continue
		}

		startText, endText, ok := strings.Cut(lines[1], " --> ")
		if !ok {
			continue
		}
		start, err := parseSubtitleTimestamp(startText)
		if err != nil {
			return nil, err
		}
		end, err := parseSubtitleTimestamp(endText)
		if err != nil {
			return nil, err
		}

		text := strings.TrimSpace(strings.Join(lines[2:], " "))
		if text == "" {
			continue
		}
		segments = append(segments, Segment{
			Start:     start,
			End:       &end,
			Text:      text,
			FileIndex: index,
			Filename:  filename,
		})
	}
	return segments, nil
}

// parseSubtitleTimestamp reads HH:MM:SS,mmm (or the dot variant) into
// seconds.
func parseSubtitleTimestamp(value string) (float64, error) {
	value = strings.TrimSpace(value)
	normalized := strings.ReplaceAll(value, ",", ".")
	parts := strings.Split(normalized, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTimestamp, value)
	}

	hours, errH := strconv.ParseFloat(parts[0], 64)
	minutes, errM := strconv.ParseFloat(parts[1], 64)
	seconds, errS := strconv.ParseFloat(parts[2], 64)
	if errH != nil || errM != nil || errS != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTimestamp, value)
	}
	return hours*3600 + minutes*60 + seconds, nil
}
