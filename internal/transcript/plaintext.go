package transcript

import (
	"regexp"
	"strconv"
	"strings"
)

// averageReadSpeed is the words-per-minute rate used to estimate spoken
// duration for lines without an explicit end time.
const averageReadSpeed = 150.0

// Range forms carry both a start and an end time and take priority over
// every single-timestamp pattern.
var (
	rangeHHMMSS = regexp.MustCompile(`\[(\d{1,2}):(\d{2}):(\d{2})-(\d{1,2}):(\d{2}):(\d{2})\]`)
	rangeMMSS   = regexp.MustCompile(`\[(\d{1,2}):(\d{2})-(\d{1,2}):(\d{2})\]`)
)

// singlePatterns is the fixed-priority timestamp grammar for plain text
// lines. The first pattern that matches wins, and the number of capture
// groups it declares decides how the captured digits are read. Bare
// integers are recognized only inside brackets; an unbracketed number is
// text (years, quantities, list numbers).
var singlePatterns = []*regexp.Regexp{
	// [HH:MM:SS.mmm] with optional milliseconds
	regexp.MustCompile(`\[(\d{1,2}):(\d{2}):(\d{2})(?:[.,](\d{1,3}))?\]`),
	// [MM:SS]
	regexp.MustCompile(`\[(\d{1,2}):(\d{2})\]`),
	// HH:MM:SS.mmm at line start
	regexp.MustCompile(`^(\d{1,2}):(\d{2}):(\d{2})(?:[.,](\d{1,3}))?(?:\s|$)`),
	// MM:SS at line start
	regexp.MustCompile(`^(\d{1,2}):(\d{2})(?:\s|$)`),
	// Whisper range [HH:MM:SS.mmm --> HH:MM:SS.mmm]; only the start is kept
	regexp.MustCompile(`\[(\d{1,2}):(\d{2}):(\d{2})(?:[.,](\d{1,3}))?\s*-->\s*\d{1,2}:\d{2}:\d{2}(?:[.,]\d{1,3})?\]`),
	// [N] bracketed seconds
	regexp.MustCompile(`\[(\d+)\]`),
}

// parseText extracts timed segments from free-form transcript text. A
// running cursor supplies start times for lines without a recognizable
// timestamp and advances by the word-count estimate.
func parseText(content, filename string) []Segment {
	var segments []Segment
	cursor := 0.0

	for index, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		start := cursor
		var end *float64
		text := line
		found := false

		if match := rangeHHMMSS.FindStringSubmatch(line); match != nil {
			start = groupFloat(match, 1)*3600 + groupFloat(match, 2)*60 + groupFloat(match, 3)
			endValue := groupFloat(match, 4)*3600 + groupFloat(match, 5)*60 + groupFloat(match, 6)
			end = &endValue
			text = stripFirstMatch(rangeHHMMSS, text)
			cursor = start
			found = true
		} else if match := rangeMMSS.FindStringSubmatch(line); match != nil {
			start = groupFloat(match, 1)*60 + groupFloat(match, 2)
			endValue := groupFloat(match, 3)*60 + groupFloat(match, 4)
			end = &endValue
			text = stripFirstMatch(rangeMMSS, text)
			cursor = start
			found = true
		}

		if !found {
			for _, pattern := range singlePatterns {
				match := pattern.FindStringSubmatch(line)
				if match == nil {
					continue
				}
				start = singleTimestampSeconds(match, cursor)
				cursor = start
				text = stripFirstMatch(pattern, text)
				found = true
				break
			}
		}

		// Drop bare speaker labels ("Name:") left over once the timestamp
		// is gone.
		text = strings.TrimSpace(strings.TrimLeft(text, ":"))
		if strings.HasSuffix(text, ":") && len(strings.Fields(text)) == 1 {
			continue
		}
		if text == "" {
			continue
		}

		estimate := max(float64(len(strings.Fields(text)))/averageReadSpeed*60, 1)
		if end == nil {
			if found {
				endValue := start + estimate
				end = &endValue
			} else {
				cursor += estimate
				endValue := cursor
				end = &endValue
			}
		}

		segments = append(segments, Segment{
			Start:     start,
			End:       end,
			Text:      text,
			FileIndex: index,
			Filename:  filename,
		})
	}

	// A non-empty file never produces empty output: fall back to one
	// segment covering the whole content.
	if len(segments) == 0 && strings.TrimSpace(content) != "" {
		segments = append(segments, Segment{
			Start:    0,
			Text:     strings.TrimSpace(content),
			Filename: filename,
		})
	}
	return segments
}

// singleTimestampSeconds resolves a single-timestamp match by its capture
// shape: one number is bare seconds (kept only below an hour), two are
// MM:SS, three are HH:MM:SS, four add a milliseconds fraction. Anything
// else keeps the running cursor.
func singleTimestampSeconds(match []string, cursor float64) float64 {
	switch len(match) {
	case 2:
		seconds, err := strconv.ParseFloat(match[1], 64)
		if err != nil || seconds >= 3600 {
			return cursor
		}
		return seconds
	case 3:
		return groupFloat(match, 1)*60 + groupFloat(match, 2)
	case 4:
		return groupFloat(match, 1)*3600 + groupFloat(match, 2)*60 + groupFloat(match, 3)
	case 5:
		millis := groupFloat(match, 4) / 1000
		return groupFloat(match, 1)*3600 + groupFloat(match, 2)*60 + groupFloat(match, 3) + millis
	default:
		return cursor
	}
}

// groupFloat reads a capture group as a float, treating an absent optional
// group as zero.
func groupFloat(match []string, index int) float64 {
	if index >= len(match) || match[index] == "" {
		return 0
	}
	value, err := strconv.ParseFloat(match[index], 64)
	if err != nil {
		return 0
	}
	return value
}

// stripFirstMatch removes the first occurrence of pattern from s and trims
// the remainder. Later occurrences stay: only the matched timestamp is
// markup, the rest is transcript text.
func stripFirstMatch(pattern *regexp.Regexp, s string) string {
	loc := pattern.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return strings.TrimSpace(s[:loc[0]] + s[loc[1]:])
}
