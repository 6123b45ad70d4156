package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/transport-catalogue/pipeline"
	"github.com/theoremus-urban-solutions/transport-catalogue/render"
	"github.com/theoremus-urban-solutions/transport-catalogue/svg"
)

// Config is the global application configuration
var Config = Default()

// DefaultPaths are tried in order when no file is named explicitly.
var DefaultPaths = []string{"catalogue.yml", "config.yml"}

// LoadAppConfig loads the configuration into Config. An empty path searches
// DefaultPaths and falls back to defaults when none exists.
func LoadAppConfig(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Load reads, decodes and validates a configuration file. Values missing
// from the file keep their defaults. Environment overrides are applied
// before validation.
func Load(path string) (AppConfig, error) {
	cfg := Default()

	data, used, err := read(path)
	if err != nil {
		return cfg, err
	}
	if data != nil {
		if err := decode(used, data, &cfg); err != nil {
			return cfg, fmt.Errorf("config %s: %w", used, err)
		}
	}

	applyEnv(&cfg)

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", used, err)
	}
	return cfg, nil
}

func read(path string) ([]byte, string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, path, err
		}
		return data, path, nil
	}
	for _, p := range DefaultPaths {
		data, err := os.ReadFile(p)
		if err == nil {
			return data, p, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, p, err
		}
	}
	return nil, "defaults", nil
}

func decode(path string, data []byte, cfg *AppConfig) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Unmarshal(data, cfg)
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

// applyEnv lets CATALOGUE_DEBUG=YES and CATALOGUE_LOG_FORMAT=JSON override
// the file settings.
func applyEnv(cfg *AppConfig) {
	if os.Getenv("CATALOGUE_DEBUG") == "YES" {
		cfg.Logging.Level = "debug"
	}
	if os.Getenv("CATALOGUE_LOG_FORMAT") == "JSON" {
		cfg.Logging.Format = "json"
	}
}

// RenderStyle converts the style section for the map renderer.
func (c StyleConfig) RenderStyle() render.Style {
	s := render.DefaultStyle()
	s.FontFamily = c.FontFamily
	s.BusLabelWeight = c.BusLabelWeight
	s.StopFill = svg.Named(c.StopFill)
	s.StopLabelFill = svg.Named(c.StopLabelFill)
	return s
}

// PipelineOptions builds request processing options from the configuration.
func (c AppConfig) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		Workers:            c.Pipeline.Workers,
		UnknownTypeMessage: c.Pipeline.UnknownTypeMessage,
		Style:              c.Style.RenderStyle(),
	}
}
