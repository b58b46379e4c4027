package config

const (
	defaultDataDir           = "~/.local/share/splice"
	defaultLogDir            = "~/.local/share/splice/logs"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	defaultOutputFormat      = "txt"
	defaultMaxChunkSeconds   = 1800
	defaultNoiseFloorDB      = -40
	defaultMinSilenceSeconds = 1.0
	defaultAudioFormat       = "mp3"
	defaultAudioBitrate      = "128k"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Merge: Merge{
			OutputFormat:   defaultOutputFormat,
			AddFileMarkers: true,
		},
		Split: Split{
			MaxChunkSeconds:   defaultMaxChunkSeconds,
			SilenceDetection:  true,
			NoiseFloorDB:      defaultNoiseFloorDB,
			MinSilenceSeconds: defaultMinSilenceSeconds,
			AudioFormat:       defaultAudioFormat,
			AudioBitrate:      defaultAudioBitrate,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
