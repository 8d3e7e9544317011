// Package config resolves the runtime configuration for the animalgen CLI.
// Behaviour (local vs. remote flow) is a config choice, not a runtime flag.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Mode selects which pipeline flow runs.
type Mode string

const (
	// ModeLocal renders from a local JSON dataset.
	ModeLocal Mode = "local"
	// ModeRemote prompts for a query and renders remote lookup results.
	ModeRemote Mode = "remote"
)

// APIKeyEnv overrides the configured API key when set.
const APIKeyEnv = "API_NINJA_KEY"

// API holds remote lookup settings.
type API struct {
	URL        string `yaml:"url"`
	QueryParam string `yaml:"query_param"`
	Key        string `yaml:"key"`
}

// Config is the explicit configuration injected into the pipeline driver.
type Config struct {
	Mode         Mode   `yaml:"mode"`
	Dataset      string `yaml:"dataset"`
	Template     string `yaml:"template"`
	Output       string `yaml:"output"`
	Attribute    string `yaml:"attribute"`
	SubAttribute string `yaml:"sub_attribute"`
	Renderer     string `yaml:"renderer"`
	API          API    `yaml:"api"`
}

// Default returns the configuration matching the stock artifact names.
func Default() Config {
	return Config{
		Mode:         ModeLocal,
		Dataset:      "animals_data.json",
		Template:     "animals_template.html",
		Output:       "animals.html",
		Attribute:    "characteristics",
		SubAttribute: "skin_type",
		Renderer:     "cards",
		API: API{
			URL:        "https://api.api-ninjas.com/v1/animals",
			QueryParam: "name",
		},
	}
}

// Load reads a YAML config file and merges it over the defaults. A missing
// file is not an error: the defaults apply unchanged. The API key can always
// be supplied via the API_NINJA_KEY environment variable instead of the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %q: %w", path, err)
			}
		case os.IsNotExist(err):
			// defaults apply
		default:
			return Config{}, fmt.Errorf("config: read %q: %w", path, err)
		}
	}

	if key := os.Getenv(APIKeyEnv); key != "" {
		cfg.API.Key = key
	}

	return cfg.validate()
}

func (c Config) validate() (Config, error) {
	switch c.Mode {
	case ModeLocal, ModeRemote:
	case "":
		c.Mode = ModeLocal
	default:
		return Config{}, fmt.Errorf("config: unknown mode %q", c.Mode)
	}
	if c.Attribute == "" {
		return Config{}, fmt.Errorf("config: attribute is required")
	}
	if c.Output == "" {
		return Config{}, fmt.Errorf("config: output is required")
	}
	if c.Renderer == "" {
		c.Renderer = "cards"
	}
	return c, nil
}
