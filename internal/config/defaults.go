package config

const (
	defaultOutputDir      = "~/docimages"
	defaultLogDir         = "~/.local/share/docimages/logs"
	defaultMonoSample     = "~/Music/The Poodle Podcast.wav"
	defaultStereoSample   = "~/Music/PoodlePodStereo.wav"
	defaultProjectX       = 10
	defaultProjectY       = 10
	defaultProjectWidth   = 850
	defaultProjectHeight  = 800
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultConfigLocation = "~/.config/docimages/config.toml"
	projectConfigName     = "docimages.toml"
	outputDirEnv          = "DOCIMAGES_OUTPUT_DIR"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		Samples: Samples{
			Mono:   defaultMonoSample,
			Stereo: defaultStereoSample,
		},
		Project: Project{
			X:      defaultProjectX,
			Y:      defaultProjectY,
			Width:  defaultProjectWidth,
			Height: defaultProjectHeight,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
