package audiosplit

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// DetectSilence returns the end times of silent stretches in the input,
// sorted ascending with near-duplicates collapsed.
func DetectSilence(ctx context.Context, ffmpegPath, inputPath string, noiseFloorDB int, minSilenceSeconds float64) ([]float64, error) {
	filter := fmt.Sprintf("silencedetect=noise=%ddB:duration=%s", noiseFloorDB, strconv.FormatFloat(minSilenceSeconds, 'f', -1, 64))
	cmd := commandContext(ctx, ffmpegPath, "-hide_banner", "-i", inputPath, "-af", filter, "-f", "null", "-")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("detect silence in %s: %w", inputPath, err)
	}
	return parseSilencePoints(stderr.String()), nil
}

// parseSilencePoints extracts silence_end timestamps from silencedetect
// filter output. Lines look like:
//
//	[silencedetect @ 0x...] silence_end: 123.456 | silence_duration: 2.345
func parseSilencePoints(output string) []float64 {
	var points []float64
	for _, line := range strings.Split(output, "\n") {
		_, after, found := strings.Cut(line, "silence_end: ")
		if !found {
			continue
		}
		value := after
		if space := strings.IndexByte(value, ' '); space >= 0 {
			value = value[:space]
		}
		point, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			continue
		}
		points = append(points, point)
	}

	slices.Sort(points)
	return slices.CompactFunc(points, func(a, b float64) bool {
		return math.Abs(a-b) < 0.1
	})
}
