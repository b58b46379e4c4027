package audiosplit

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

var commandContext = exec.CommandContext

// ProbeDuration reports the duration of the audio file in seconds.
//
// ffmpeg prints stream metadata on stderr; the decode pass through the null
// muxer keeps the exit status clean for valid inputs.
func ProbeDuration(ctx context.Context, ffmpegPath, inputPath string) (float64, error) {
	cmd := commandContext(ctx, ffmpegPath, "-hide_banner", "-i", inputPath, "-f", "null", "-")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	duration, err := parseDuration(stderr.String())
	if err != nil {
		if runErr != nil {
			return 0, fmt.Errorf("probe %s: %w", inputPath, runErr)
		}
		return 0, fmt.Errorf("probe %s: %w", inputPath, err)
	}
	return duration, nil
}

func parseDuration(output string) (float64, error) {
	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "Duration:") {
			continue
		}
		value := strings.TrimSpace(strings.TrimPrefix(trimmed, "Duration:"))
		if comma := strings.Index(value, ","); comma >= 0 {
			value = value[:comma]
		}
		return parseClock(strings.TrimSpace(value))
	}
	return 0, fmt.Errorf("no duration line in ffmpeg output")
}

func parseClock(value string) (float64, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid duration %q", value)
	}
	var total float64
	for _, part := range parts {
		component, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", value, err)
		}
		total = total*60 + component
	}
	return total, nil
}
