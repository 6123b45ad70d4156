// Package config handles application configuration loading and validation.
//
// Configuration is read from catalogue.yml or config.yml (YAML) or from an
// explicitly named .yml/.yaml/.toml file, and validated using struct tags.
// When no file is found the built-in defaults are used.
package config
