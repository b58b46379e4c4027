package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeMerge()
	c.normalizeSplit()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.OutputDir) != "" {
		if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
			return fmt.Errorf("paths.output_dir: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeMerge() {
	c.Merge.OutputFormat = strings.ToLower(strings.TrimSpace(c.Merge.OutputFormat))
	if c.Merge.OutputFormat == "" {
		c.Merge.OutputFormat = defaultOutputFormat
	}
}

func (c *Config) normalizeSplit() {
	if c.Split.MaxChunkSeconds <= 0 {
		c.Split.MaxChunkSeconds = defaultMaxChunkSeconds
	}
	if c.Split.NoiseFloorDB == 0 {
		c.Split.NoiseFloorDB = defaultNoiseFloorDB
	}
	if c.Split.MinSilenceSeconds <= 0 {
		c.Split.MinSilenceSeconds = defaultMinSilenceSeconds
	}
	c.Split.AudioFormat = strings.ToLower(strings.TrimSpace(c.Split.AudioFormat))
	if c.Split.AudioFormat == "" {
		c.Split.AudioFormat = defaultAudioFormat
	}
	if strings.TrimSpace(c.Split.AudioBitrate) == "" {
		c.Split.AudioBitrate = defaultAudioBitrate
	}
	c.Split.FFmpegPath = strings.TrimSpace(c.Split.FFmpegPath)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
