package transcript

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"slices"
	"time"

	"splice/internal/logging"
	"splice/internal/textenc"
)

// fileGapSeconds is the assumed gap after a file whose last segment lacks
// an end time, so the next file still starts on a later offset.
const fileGapSeconds = 30.0

// Merger owns one merge session: a list of parsed files plus the options
// the result will be rendered with. It is built for a single calling flow;
// it is not safe for concurrent mutation.
type Merger struct {
	opts   MergeOptions
	files  []*File
	logger *slog.Logger
}

// NewMerger creates a merge session. A nil logger is replaced with a no-op
// logger.
func NewMerger(opts MergeOptions, logger *slog.Logger) *Merger {
	return &Merger{
		opts:   opts,
		logger: logging.NewComponentLogger(logger, "merger"),
	}
}

// AddFiles reads, decodes, and parses each path in order, then reorders the
// session's files by sequence number. Any per-file failure aborts the whole
// call; nothing is partially merged.
func (m *Merger) AddFiles(ctx context.Context, paths []string) error {
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		file, err := LoadFile(path)
		if err != nil {
			return err
		}
		m.logger.Debug("parsed transcription file",
			logging.String("file", file.Filename),
			logging.String("format", string(file.Format)),
			logging.Int("segments", len(file.Segments)))
		m.files = append(m.files, file)
	}

	slices.SortStableFunc(m.files, func(a, b *File) int {
		return cmp.Compare(sortKey(a), sortKey(b))
	})
	return nil
}

func sortKey(f *File) int {
	if !f.HasSequence {
		return math.MaxInt
	}
	return f.Sequence
}

// LoadFile reads one transcription file from disk and parses it according
// to its detected format.
func LoadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	content := textenc.Decode(raw)

	filename := filepath.Base(path)
	if filename == "" || filename == "." || filename == string(filepath.Separator) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFilename, path)
	}

	format := detectFormat(path, content)
	sequence, hasSequence := sequenceNumber(filename)

	var segments []Segment
	switch format {
	case FormatSubtitle:
		segments, err = parseSubtitle(content, filename)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", filename, err)
		}
	case FormatMarkdown:
		segments = parseMarkdown(content, filename)
	default:
		segments = parseText(content, filename)
	}

	return &File{
		Path:        path,
		Filename:    filename,
		Sequence:    sequence,
		HasSequence: hasSequence,
		Format:      format,
		Segments:    segments,
	}, nil
}

// Files returns the session's parsed files in merge order.
func (m *Merger) Files() []*File {
	return m.files
}

// FileCount reports how many files the session holds.
func (m *Merger) FileCount() int {
	return len(m.files)
}

// SegmentCount reports the total number of parsed segments across files.
func (m *Merger) SegmentCount() int {
	total := 0
	for _, file := range m.files {
		total += len(file.Segments)
	}
	return total
}

// Merge flattens all files into one time-sorted segment list and renders it
// in the configured output format. Segment times are shifted by a running
// offset so each file starts where the previous one ended.
func (m *Merger) Merge() (string, error) {
	return m.merge(time.Now().UTC())
}

func (m *Merger) merge(now time.Time) (string, error) {
	merged := m.mergedSegments()
	m.logger.Info("merged transcription files",
		logging.Int("files", len(m.files)),
		logging.Int("segments", len(merged)),
		logging.String("format", string(m.opts.OutputFormat)))

	switch m.opts.OutputFormat {
	case FormatSubtitle:
		return renderSubtitle(merged, m.opts), nil
	case FormatMarkdown:
		return renderMarkdown(merged, m.opts, now), nil
	default:
		return renderText(merged, m.opts), nil
	}
}

// mergedSegments applies the cumulative offset file by file and sorts the
// result by start time. The sort is stable, so segments sharing a start
// keep their original relative order.
func (m *Merger) mergedSegments() []Segment {
	var all []Segment
	offset := m.opts.TimeOffsetSeconds

	for fileIndex, file := range m.files {
		for _, segment := range file.Segments {
			all = append(all, segment.shifted(offset))
		}
		if fileIndex == len(m.files)-1 {
			break
		}
		if last := len(file.Segments) - 1; last >= 0 {
			if end := file.Segments[last].End; end != nil {
				offset += *end
			} else {
				offset += file.Segments[last].Start + fileGapSeconds
			}
		}
	}

	slices.SortStableFunc(all, func(a, b Segment) int {
		return cmp.Compare(a.Start, b.Start)
	})
	return all
}
