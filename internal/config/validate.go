package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMerge(); err != nil {
		return err
	}
	if err := c.validateSplit(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateMerge() error {
	switch c.Merge.OutputFormat {
	case "txt", "srt", "md":
	default:
		return fmt.Errorf("merge.output_format must be one of txt, srt, md (got %q)", c.Merge.OutputFormat)
	}
	return nil
}

func (c *Config) validateSplit() error {
	if c.Split.MaxChunkSeconds < 10 {
		return errors.New("split.max_chunk_seconds must be at least 10")
	}
	if c.Split.NoiseFloorDB > 0 {
		return fmt.Errorf("split.noise_floor_db must be negative decibels (got %d)", c.Split.NoiseFloorDB)
	}
	switch c.Split.AudioFormat {
	case "mp3", "wav", "flac", "ogg", "m4a":
	default:
		return fmt.Errorf("split.audio_format %q is not a supported audio container", c.Split.AudioFormat)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", c.Logging.Level)
	}
	return nil
}
