package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"splice/internal/config"
	"splice/internal/fileutil"
	"splice/internal/session"
	"splice/internal/transcript"
)

const defaultExportName = "merged_transcription"

func newExportCommand(ctx *commandContext) *cobra.Command {
	var (
		outputFlag     string
		timecodeFlag   string
		timecodeFormat string
		keepMarkers    bool
	)

	cmd := &cobra.Command{
		Use:   "export [name]",
		Short: "Export the most recent merge result to a file",
		Long: `Export writes the latest saved merge result to disk. Plain text results
can have their timecodes rewritten on the way out. A bare name without an
extension gets the extension of the stored format; when no output location
is given the configured output directory (or the current directory) is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := transcript.ParseTimecodeStyle(timecodeFlag)
			if err != nil {
				return err
			}
			if style == transcript.TimecodeCustom && strings.TrimSpace(timecodeFormat) == "" {
				return fmt.Errorf("--timecode custom requires --timecode-format")
			}

			var result *session.Result
			err = ctx.withStore(func(store *session.Store) error {
				latest, err := store.Latest(cmd.Context())
				if err != nil {
					return err
				}
				result = latest
				return nil
			})
			if err != nil {
				if errors.Is(err, session.ErrNoResult) {
					return fmt.Errorf("nothing to export: run `splice merge` first")
				}
				return err
			}

			content := result.Content
			if style != transcript.TimecodeKeep {
				if result.Format != transcript.FormatText {
					return fmt.Errorf("timecode rewriting only applies to txt results (stored result is %s)", result.Format)
				}
				content, err = transcript.RewriteTimecodes(content, style, timecodeFormat, keepMarkers)
				if err != nil {
					return err
				}
			}

			name := defaultExportName
			if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
				name = strings.TrimSpace(args[0])
			}
			target, err := exportTarget(ctx.configValue(), outputFlag, name, result.Format)
			if err != nil {
				return err
			}
			target, err = fileutil.UniquePath(target)
			if err != nil {
				return err
			}
			if err := fileutil.WriteFileAtomic(target, []byte(content), 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported merge result from %s to %s\n",
				result.CreatedAt.Local().Format("2006-01-02 15:04:05"), target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file or directory")
	cmd.Flags().StringVar(&timecodeFlag, "timecode", "keep", "Rewrite timecodes: keep, hms, hms-ms, seconds, seconds-ms, or custom")
	cmd.Flags().StringVar(&timecodeFormat, "timecode-format", "", "Pattern for --timecode custom, using HH, MM, SS, and MS tokens")
	cmd.Flags().BoolVar(&keepMarkers, "keep-markers", true, "Keep bracketed filename markers when rewriting timecodes")
	return cmd
}

// exportTarget resolves the destination path from the output flag, the
// export name, and the stored format. The name gains the format's extension
// when it carries none.
func exportTarget(cfg *config.Config, output, name string, format transcript.Format) (string, error) {
	if !strings.Contains(filepath.Base(name), ".") {
		name += "." + format.Extension()
	}

	dir := ""
	if cfg != nil && cfg.Paths.OutputDir != "" {
		dir = cfg.Paths.OutputDir
	}

	target := strings.TrimSpace(output)
	if target == "" {
		if dir == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return "", fmt.Errorf("resolve working directory: %w", err)
			}
			dir = cwd
		}
		return filepath.Join(dir, name), nil
	}

	expanded, err := config.ExpandPath(target)
	if err != nil {
		return "", fmt.Errorf("resolve output path: %w", err)
	}
	if info, err := os.Stat(expanded); err == nil && info.IsDir() {
		return filepath.Join(expanded, name), nil
	}
	if !strings.Contains(filepath.Base(expanded), ".") {
		expanded += "." + format.Extension()
	}
	return expanded, nil
}
