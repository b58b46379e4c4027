package transcript

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TimecodeStyle selects how leading [timecode] tokens are rewritten when a
// merged plain text result is exported.
type TimecodeStyle string

const (
	TimecodeKeep          TimecodeStyle = "keep"
	TimecodeHMS           TimecodeStyle = "hms"
	TimecodeHMSMillis     TimecodeStyle = "hms-ms"
	TimecodeSeconds       TimecodeStyle = "seconds"
	TimecodeSecondsMillis TimecodeStyle = "seconds-ms"
	TimecodeCustom        TimecodeStyle = "custom"
)

// ParseTimecodeStyle validates a user-facing style name.
func ParseTimecodeStyle(value string) (TimecodeStyle, error) {
	style := TimecodeStyle(strings.ToLower(strings.TrimSpace(value)))
	switch style {
	case "", TimecodeKeep:
		return TimecodeKeep, nil
	case TimecodeHMS, TimecodeHMSMillis, TimecodeSeconds, TimecodeSecondsMillis, TimecodeCustom:
		return style, nil
	}
	return "", fmt.Errorf("unsupported timecode style %q", value)
}

// Lines a plain text render produces: [timecode] text, optionally with one
// or two bracketed marker tokens between timecode and text.
var (
	timecodeMarkers = regexp.MustCompile(`^\[(\d{1,2}:\d{2}(?::\d{2})?|\d+)\]\s*\[([^\]]+)\]\s*(?:\[([^\]]+)\]\s*)?(.*)$`)
	timecodeSimple  = regexp.MustCompile(`^\[(\d{1,2}:\d{2}(?::\d{2})?|\d+)\]\s*(.*)$`)
)

// RewriteTimecodes reformats the leading timecode of every recognized line
// in a rendered plain text transcript. Lines that do not open with a
// timecode pass through unchanged. When keepMarkers is false, bracketed
// marker tokens between the timecode and the text are dropped.
func RewriteTimecodes(content string, style TimecodeStyle, customFormat string, keepMarkers bool) (string, error) {
	if style == TimecodeKeep {
		return content, nil
	}

	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			out = append(out, "")
			continue
		}

		if match := timecodeMarkers.FindStringSubmatch(line); match != nil {
			formatted, err := convertTimecode(match[1], style, customFormat)
			if err != nil {
				return "", err
			}
			text := match[4]
			switch {
			case !keepMarkers:
				out = append(out, fmt.Sprintf("[%s] %s", formatted, text))
			case match[3] != "":
				out = append(out, fmt.Sprintf("[%s] [%s %s] %s", formatted, match[2], match[3], text))
			default:
				out = append(out, fmt.Sprintf("[%s] [%s] %s", formatted, match[2], text))
			}
			continue
		}

		if match := timecodeSimple.FindStringSubmatch(line); match != nil {
			formatted, err := convertTimecode(match[1], style, customFormat)
			if err != nil {
				return "", err
			}
			out = append(out, fmt.Sprintf("[%s] %s", formatted, match[2]))
			continue
		}

		out = append(out, line)
	}
	return strings.Join(out, "\n"), nil
}

func convertTimecode(timecode string, style TimecodeStyle, customFormat string) (string, error) {
	total, err := timecodeSeconds(timecode)
	if err != nil {
		return "", err
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	switch style {
	case TimecodeHMS:
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds), nil
	case TimecodeHMSMillis:
		// Rendered timecodes carry whole seconds only.
		return fmt.Sprintf("%02d:%02d:%02d.000", hours, minutes, seconds), nil
	case TimecodeSeconds:
		return strconv.Itoa(total), nil
	case TimecodeSecondsMillis:
		return fmt.Sprintf("%d.0", total), nil
	case TimecodeCustom:
		if strings.TrimSpace(customFormat) == "" {
			return "", fmt.Errorf("custom timecode style requires a format")
		}
		replacer := strings.NewReplacer(
			"HH", fmt.Sprintf("%02d", hours),
			"MM", fmt.Sprintf("%02d", minutes),
			"SS", fmt.Sprintf("%02d", seconds),
			"MS", "000",
		)
		return replacer.Replace(customFormat), nil
	default:
		return timecode, nil
	}
}

func timecodeSeconds(timecode string) (int, error) {
	parts := strings.Split(timecode, ":")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.Atoi(part)
		if err != nil {
			return 0, fmt.Errorf("unsupported timecode %q", timecode)
		}
		values = append(values, value)
	}

	switch len(values) {
	case 1:
		return values[0], nil
	case 2:
		return values[0]*60 + values[1], nil
	case 3:
		return values[0]*3600 + values[1]*60 + values[2], nil
	default:
		return 0, fmt.Errorf("unsupported timecode %q", timecode)
	}
}
