package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagInitConfig = flag.Bool("init-config", false, "Write the default config file and exit")
	flagSeed       = flag.Uint64("seed", 0, "Path generator seed (0 = use configured seed)")
	flagSegments   = flag.Int("segments", -1, "Number of track segments")
	flagSubdivs    = flag.Int("subdivisions", -1, "Arc subdivisions per cross-section")
	flagRadius     = flag.Float64("radius", 0, "Tube radius")
	flagSegLength  = flag.Float64("segment-length", 0, "Length of each track segment")
	flagOut        = flag.String("out", "", "Output OBJ path")
	flagLogFile    = flag.String("log-file", "", "Log file path")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// InitConfigRequested reports whether --init-config was passed.
func InitConfigRequested() bool {
	return *flagInitConfig
}

// applyFlags applies CLI flag overrides to the config. Segments and
// subdivisions default to -1 so an explicit 0 still reaches the mesh
// builder and gets its descriptive validation error.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSeed != 0 {
		cfg.Track.Seed = *flagSeed
	}
	if *flagSegments >= 0 {
		cfg.Track.Segments = *flagSegments
	}
	if *flagSubdivs >= 0 {
		cfg.Track.Subdivisions = *flagSubdivs
	}
	if *flagRadius != 0 {
		cfg.Track.Radius = float32(*flagRadius)
	}
	if *flagSegLength != 0 {
		cfg.Track.SegmentLength = float32(*flagSegLength)
	}
	if *flagOut != "" {
		cfg.Output.Path = *flagOut
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
