package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"splice/internal/transcript"
)

func newFilesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "files <file>...",
		Short: "Inspect transcription files without merging them",
		Long: `Files parses each transcription file and reports the detected format,
the sequence number extracted from the filename, and the segments found.
The listing shows the order a merge would process the files in.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			merger := transcript.NewMerger(transcript.DefaultMergeOptions(), ctx.logger())
			if err := merger.AddFiles(cmd.Context(), args); err != nil {
				return err
			}

			columns := []tableColumn{
				{Title: "#", AlignRight: true},
				{Title: "File"},
				{Title: "Format"},
				{Title: "Seq", AlignRight: true},
				{Title: "Segments", AlignRight: true},
				{Title: "Duration", AlignRight: true},
			}
			rows := make([][]string, 0, merger.FileCount())
			for i, file := range merger.Files() {
				sequence := "-"
				if file.HasSequence {
					sequence = strconv.Itoa(file.Sequence)
				}
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					file.Filename,
					string(file.Format),
					sequence,
					strconv.Itoa(len(file.Segments)),
					formatClock(fileSpanSeconds(file)),
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(columns, rows))
			fmt.Fprintf(out, "%d files, %d segments total\n", merger.FileCount(), merger.SegmentCount())
			return nil
		},
	}
}

// fileSpanSeconds reports how far into the recording the file's last segment
// reaches, which is the offset the next file would start at.
func fileSpanSeconds(file *transcript.File) float64 {
	if len(file.Segments) == 0 {
		return 0
	}
	last := file.Segments[len(file.Segments)-1]
	if last.End != nil {
		return *last.End
	}
	return last.Start
}
