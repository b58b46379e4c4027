package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"splice/internal/config"
	"splice/internal/fileutil"
	"splice/internal/logging"
	"splice/internal/session"
	"splice/internal/transcript"
)

func newMergeCommand(ctx *commandContext) *cobra.Command {
	var (
		formatFlag       string
		outputFlag       string
		offsetFlag       float64
		removeTimestamps bool
		noFileMarkers    bool
		noSave           bool
	)

	cmd := &cobra.Command{
		Use:   "merge <file>...",
		Short: "Merge transcription files into a single document",
		Long: `Merge reads subtitle, plain text, and markdown transcription files,
orders them by the sequence number in their filenames, shifts timestamps so
each file continues where the previous one ended, and renders the combined
result in the requested output format.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			opts, err := mergeOptions(cfg, cmd, formatFlag, offsetFlag, removeTimestamps, noFileMarkers)
			if err != nil {
				return err
			}

			logger := ctx.logger()
			merger := transcript.NewMerger(opts, logger)
			if err := merger.AddFiles(cmd.Context(), args); err != nil {
				return err
			}

			content, err := merger.Merge()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			target := strings.TrimSpace(outputFlag)
			if target == "" {
				fmt.Fprint(out, content)
			} else {
				resolved, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve output path: %w", err)
				}
				if err := fileutil.WriteFileAtomic(resolved, []byte(content), 0o644); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				fmt.Fprintf(out, "Merged %d files (%d segments) into %s\n",
					merger.FileCount(), merger.SegmentCount(), resolved)
			}

			if noSave {
				return nil
			}
			err = ctx.withStore(func(store *session.Store) error {
				_, err := store.Save(cmd.Context(), opts.OutputFormat, merger.FileCount(), merger.SegmentCount(), content)
				return err
			})
			if err != nil {
				// Another splice process may hold the session lock; the merge
				// itself already succeeded.
				if errors.Is(err, session.ErrLocked) {
					logger.Warn("skipping session save", logging.Error(err))
					return nil
				}
				return fmt.Errorf("save merge result: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Output format: txt, srt, or md")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write the merged document to this file instead of stdout")
	cmd.Flags().Float64Var(&offsetFlag, "offset", 0, "Shift all timestamps forward by this many seconds")
	cmd.Flags().BoolVar(&removeTimestamps, "remove-timestamps", false, "Omit timestamps from txt output")
	cmd.Flags().BoolVar(&noFileMarkers, "no-file-markers", false, "Omit source filename markers")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not record the result in the session history")
	return cmd
}

// mergeOptions layers explicit flags over the configured defaults. Only
// flags the user actually set override the config file.
func mergeOptions(cfg *config.Config, cmd *cobra.Command, format string, offset float64, removeTimestamps, noFileMarkers bool) (transcript.MergeOptions, error) {
	opts := transcript.DefaultMergeOptions()
	if cfg != nil {
		opts.OutputFormat = transcript.ParseFormat(cfg.Merge.OutputFormat)
		opts.TimeOffsetSeconds = cfg.Merge.TimeOffsetSeconds
		opts.RemoveTimestamps = cfg.Merge.RemoveTimestamps
		opts.AddFileMarkers = cfg.Merge.AddFileMarkers
	}

	if cmd.Flags().Changed("format") {
		normalized := strings.ToLower(strings.TrimSpace(format))
		switch normalized {
		case "txt", "srt", "md":
			opts.OutputFormat = transcript.ParseFormat(normalized)
		default:
			return opts, fmt.Errorf("unsupported output format %q (expected txt, srt, or md)", format)
		}
	}
	if cmd.Flags().Changed("offset") {
		if offset < 0 {
			return opts, fmt.Errorf("offset must not be negative")
		}
		opts.TimeOffsetSeconds = offset
	}
	if cmd.Flags().Changed("remove-timestamps") {
		opts.RemoveTimestamps = removeTimestamps
	}
	if cmd.Flags().Changed("no-file-markers") {
		opts.AddFileMarkers = !noFileMarkers
	}
	return opts, nil
}
