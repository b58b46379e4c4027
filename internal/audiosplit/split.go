package audiosplit

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"splice/internal/logging"
)

// Chunk describes one extracted audio segment.
type Chunk struct {
	Path     string
	Start    float64
	Duration float64
	Number   int
}

// Options controls how an input file is divided.
type Options struct {
	MaxChunkSeconds   int
	SilenceDetection  bool
	NoiseFloorDB      int
	MinSilenceSeconds float64
	AudioFormat       string
	AudioBitrate      string
}

// DefaultOptions mirrors the configuration defaults.
func DefaultOptions() Options {
	return Options{
		MaxChunkSeconds:   1800,
		SilenceDetection:  true,
		NoiseFloorDB:      -40,
		MinSilenceSeconds: 1.0,
		AudioFormat:       "mp3",
		AudioBitrate:      "128k",
	}
}

type span struct {
	start    float64
	duration float64
}

// Splitter divides audio files into chunks using a resolved ffmpeg binary.
type Splitter struct {
	ffmpegPath string
	opts       Options
	logger     *slog.Logger
}

// NewSplitter constructs a splitter. The ffmpeg path must already be
// resolved; logger may be nil. Zero values for the numeric and format
// option fields fall back to the defaults.
func NewSplitter(ffmpegPath string, opts Options, logger *slog.Logger) *Splitter {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Splitter{
		ffmpegPath: ffmpegPath,
		opts:       fillOptions(opts),
		logger:     logging.NewComponentLogger(logger, "audiosplit"),
	}
}

func fillOptions(opts Options) Options {
	defaults := DefaultOptions()
	if opts.MaxChunkSeconds <= 0 {
		opts.MaxChunkSeconds = defaults.MaxChunkSeconds
	}
	if opts.NoiseFloorDB == 0 {
		opts.NoiseFloorDB = defaults.NoiseFloorDB
	}
	if opts.MinSilenceSeconds <= 0 {
		opts.MinSilenceSeconds = defaults.MinSilenceSeconds
	}
	if opts.AudioFormat == "" {
		opts.AudioFormat = defaults.AudioFormat
	}
	if opts.AudioBitrate == "" {
		opts.AudioBitrate = defaults.AudioBitrate
	}
	return opts
}

// Split probes the input, plans chunk boundaries, and extracts each chunk
// into a "<stem>_segments" directory beside the source file.
func (s *Splitter) Split(ctx context.Context, inputPath string) ([]Chunk, error) {
	total, err := ProbeDuration(ctx, s.ffmpegPath, inputPath)
	if err != nil {
		return nil, err
	}
	if total <= 0 {
		return nil, fmt.Errorf("could not determine duration of %s", inputPath)
	}
	s.logger.Info("probed input",
		logging.String("path", inputPath),
		logging.Float64("duration_seconds", total))

	spans, err := s.plan(ctx, inputPath, total)
	if err != nil {
		return nil, err
	}

	outputDir := segmentsDir(inputPath)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", outputDir, err)
	}

	chunks := make([]Chunk, 0, len(spans))
	for i, sp := range spans {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		number := i + 1
		chunkPath := filepath.Join(outputDir, fmt.Sprintf("chunk_%03d.%s", number, s.opts.AudioFormat))
		s.logger.Info("extracting chunk",
			logging.Int("chunk", number),
			logging.Int("total", len(spans)),
			logging.Float64("start_seconds", sp.start))
		if err := s.extract(ctx, inputPath, chunkPath, sp); err != nil {
			return nil, err
		}
		chunks = append(chunks, Chunk{
			Path:     chunkPath,
			Start:    sp.start,
			Duration: sp.duration,
			Number:   number,
		})
	}
	return chunks, nil
}

func (s *Splitter) plan(ctx context.Context, inputPath string, total float64) ([]span, error) {
	maxSeconds := float64(s.opts.MaxChunkSeconds)
	if !s.opts.SilenceDetection {
		return planByTime(total, maxSeconds), nil
	}

	points, err := DetectSilence(ctx, s.ffmpegPath, inputPath, s.opts.NoiseFloorDB, s.opts.MinSilenceSeconds)
	if err != nil {
		return nil, err
	}
	if len(points) < 2 {
		s.logger.Warn("too few silence points, using fixed windows",
			logging.Int("silence_points", len(points)))
		return planByTime(total, maxSeconds), nil
	}
	spans := planBySilence(total, maxSeconds, points)
	if len(spans) == 0 {
		return planByTime(total, maxSeconds), nil
	}
	return spans, nil
}

func planByTime(total, maxSeconds float64) []span {
	count := int(math.Ceil(total / maxSeconds))
	spans := make([]span, 0, count)
	for i := 0; i < count; i++ {
		start := float64(i) * maxSeconds
		duration := maxSeconds
		if start+duration > total {
			duration = total - start
		}
		spans = append(spans, span{start: start, duration: duration})
	}
	return spans
}

// planBySilence cuts at the first silence point that pushes a chunk past the
// size limit, closing the final chunk at the end of the file.
func planBySilence(total, maxSeconds float64, points []float64) []span {
	var spans []span
	currentStart := 0.0
	for i, point := range points {
		last := i == len(points)-1
		if point-currentStart < maxSeconds && !last {
			continue
		}
		end := point
		if last {
			end = total
		}
		if end <= currentStart {
			continue
		}
		spans = append(spans, span{start: currentStart, duration: end - currentStart})
		currentStart = point
	}
	return spans
}

func (s *Splitter) extract(ctx context.Context, inputPath, outputPath string, sp span) error {
	args := []string{
		"-hide_banner",
		"-i", inputPath,
		"-ss", formatSeconds(sp.start),
		"-t", formatSeconds(sp.duration),
		"-acodec", codecFor(s.opts.AudioFormat),
	}
	if bitrateApplies(s.opts.AudioFormat) {
		args = append(args, "-b:a", s.opts.AudioBitrate)
	}
	args = append(args, "-ar", "44100", "-ac", "2", "-y", outputPath)

	cmd := commandContext(ctx, s.ffmpegPath, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("extract chunk %s: %w: %s", outputPath, err, strings.TrimSpace(string(output)))
	}
	return nil
}

func codecFor(format string) string {
	switch format {
	case "wav":
		return "pcm_s16le"
	case "flac":
		return "flac"
	case "ogg":
		return "libvorbis"
	case "m4a":
		return "aac"
	default:
		return "libmp3lame"
	}
}

func bitrateApplies(format string) bool {
	switch format {
	case "wav", "flac":
		return false
	default:
		return true
	}
}

func segmentsDir(inputPath string) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = base
	}
	return filepath.Join(dir, stem+"_segments")
}

func formatSeconds(value float64) string {
	return strconv.FormatFloat(value, 'f', 3, 64)
}
