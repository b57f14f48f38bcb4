// Package config handles track generator configuration loading and management.
package config

// Config holds all generator settings.
type Config struct {
	Track   TrackConfig   `yaml:"track"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// AngleRangeConfig is a half-open angle interval in degrees. Degrees keep
// hand-edited config files readable; the core works in radians.
type AngleRangeConfig struct {
	MinDeg float32 `yaml:"min_deg"`
	MaxDeg float32 `yaml:"max_deg"`
}

// TrackConfig holds the path walk and tube shape settings.
type TrackConfig struct {
	Seed          uint64           `yaml:"seed"`
	Segments      int              `yaml:"segments"`
	Subdivisions  int              `yaml:"subdivisions"`
	Radius        float32          `yaml:"radius"`
	SegmentLength float32          `yaml:"segment_length"`
	Yaw           AngleRangeConfig `yaml:"yaw"`
	Pitch         AngleRangeConfig `yaml:"pitch"`
}

// OutputConfig holds mesh export settings.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values. The track values
// carve a wide downhill half-pipe: turns up to 45 degrees either way, always
// descending between 4.5 and 45 degrees per segment.
func Default() *Config {
	return &Config{
		Track: TrackConfig{
			Seed:          4321,
			Segments:      100,
			Subdivisions:  10,
			Radius:        75,
			SegmentLength: 100,
			Yaw: AngleRangeConfig{
				MinDeg: -45,
				MaxDeg: 45,
			},
			Pitch: AngleRangeConfig{
				MinDeg: -45,
				MaxDeg: -4.5,
			},
		},
		Output: OutputConfig{
			Path: "track.obj",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
