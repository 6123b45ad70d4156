package config

// LoggingConfig controls log level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" toml:"format" validate:"oneof=console json"`
}

// PipelineConfig controls how stat queries are answered.
type PipelineConfig struct {
	Workers            int    `yaml:"workers" toml:"workers" validate:"gte=1,lte=256"`
	UnknownTypeMessage string `yaml:"unknownTypeMessage" toml:"unknownTypeMessage" validate:"required"`
}

// StyleConfig holds map presentation constants not carried by requests.
type StyleConfig struct {
	FontFamily     string `yaml:"fontFamily" toml:"fontFamily" validate:"required"`
	BusLabelWeight string `yaml:"busLabelWeight" toml:"busLabelWeight"`
	StopFill       string `yaml:"stopFill" toml:"stopFill" validate:"required"`
	StopLabelFill  string `yaml:"stopLabelFill" toml:"stopLabelFill" validate:"required"`
}

// GTFSConfig contains GTFS static feed import settings
type GTFSConfig struct {
	// DistanceScale turns shape_dist_traveled units into metres.
	DistanceScale float64 `yaml:"distanceScale" toml:"distanceScale" validate:"gt=0"`
	// DetectRoundtrips marks trips ending at their first stop as roundtrips.
	DetectRoundtrips bool `yaml:"detectRoundtrips" toml:"detectRoundtrips"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
	Pipeline PipelineConfig `yaml:"pipeline" toml:"pipeline"`
	Style    StyleConfig    `yaml:"style" toml:"style"`
	GTFS     GTFSConfig     `yaml:"gtfs" toml:"gtfs"`
}

// Default returns the configuration used when no file is present.
func Default() AppConfig {
	return AppConfig{
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Pipeline: PipelineConfig{
			Workers:            1,
			UnknownTypeMessage: "unknown request type",
		},
		Style: StyleConfig{
			FontFamily:     "Verdana",
			BusLabelWeight: "bold",
			StopFill:       "white",
			StopLabelFill:  "black",
		},
		GTFS: GTFSConfig{DistanceScale: 1, DetectRoundtrips: true},
	}
}
