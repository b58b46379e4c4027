package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"splice/internal/audiosplit"
	"splice/internal/deps"
)

func newSplitCommand(ctx *commandContext) *cobra.Command {
	var (
		maxChunkSeconds int
		noSilence       bool
		audioFormat     string
		audioBitrate    string
	)

	cmd := &cobra.Command{
		Use:   "split <audio-file>",
		Short: "Split a long audio recording into transcription-sized chunks",
		Long: `Split probes the recording with ffmpeg, plans chunk boundaries at
detected silence (falling back to fixed time windows), and extracts each
chunk into a "<name>_segments" directory beside the source file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}
			info, err := os.Stat(inputPath)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("file does not exist: %s", inputPath)
				}
				return fmt.Errorf("inspect file: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("%s is a directory", inputPath)
			}

			cfg := ctx.configValue()
			ffmpeg := deps.ResolveFFmpeg(cfg.Split.FFmpegPath)
			if !ffmpeg.Available {
				return fmt.Errorf("ffmpeg unavailable: %s", ffmpeg.Detail)
			}

			opts := audiosplit.Options{
				MaxChunkSeconds:   cfg.Split.MaxChunkSeconds,
				SilenceDetection:  cfg.Split.SilenceDetection,
				NoiseFloorDB:      cfg.Split.NoiseFloorDB,
				MinSilenceSeconds: cfg.Split.MinSilenceSeconds,
				AudioFormat:       cfg.Split.AudioFormat,
				AudioBitrate:      cfg.Split.AudioBitrate,
			}
			if cmd.Flags().Changed("max-chunk-seconds") {
				if maxChunkSeconds < 10 {
					return fmt.Errorf("max-chunk-seconds must be at least 10")
				}
				opts.MaxChunkSeconds = maxChunkSeconds
			}
			if cmd.Flags().Changed("no-silence") {
				opts.SilenceDetection = !noSilence
			}
			if cmd.Flags().Changed("audio-format") {
				opts.AudioFormat = audioFormat
			}
			if cmd.Flags().Changed("bitrate") {
				opts.AudioBitrate = audioBitrate
			}

			splitter := audiosplit.NewSplitter(ffmpeg.Command, opts, ctx.logger())
			chunks, err := splitter.Split(cmd.Context(), inputPath)
			if err != nil {
				return err
			}

			columns := []tableColumn{
				{Title: "#", AlignRight: true},
				{Title: "Chunk"},
				{Title: "Start", AlignRight: true},
				{Title: "Duration", AlignRight: true},
			}
			rows := make([][]string, 0, len(chunks))
			for _, chunk := range chunks {
				rows = append(rows, []string{
					strconv.Itoa(chunk.Number),
					filepath.Base(chunk.Path),
					formatClock(chunk.Start),
					formatClock(chunk.Duration),
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(columns, rows))
			fmt.Fprintf(out, "Wrote %d chunks to %s\n", len(chunks), filepath.Dir(chunks[0].Path))
			return nil
		},
	}

	cmd.Flags().IntVar(&maxChunkSeconds, "max-chunk-seconds", 0, "Maximum chunk length in seconds")
	cmd.Flags().BoolVar(&noSilence, "no-silence", false, "Cut at fixed time windows instead of detected silence")
	cmd.Flags().StringVar(&audioFormat, "audio-format", "", "Chunk audio format: mp3, wav, flac, ogg, or m4a")
	cmd.Flags().StringVar(&audioBitrate, "bitrate", "", "Audio bitrate for lossy chunk formats")
	return cmd
}
