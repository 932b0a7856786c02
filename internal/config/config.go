// Package config loads the calculator's optional HCL configuration file.
// A missing file yields the defaults; a partial file has the defaults
// filled in per field.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete calculator configuration.
type Config struct {
	UI       *UISettings    `hcl:"ui,block"`
	Defaults *FieldDefaults `hcl:"defaults,block"`
}

// UISettings contains display and logging settings.
type UISettings struct {
	LogFile  string `hcl:"log_file,optional"`
	Decimals int    `hcl:"decimals,optional"`
}

// FieldDefaults holds the raw text the three fields start out with. Kept
// as strings because the core consumes raw text, not parsed integers.
type FieldDefaults struct {
	HpThreshold string `hcl:"hp_threshold,optional"`
	BelowCount  string `hcl:"below_count,optional"`
	AboveCount  string `hcl:"above_count,optional"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		UI: &UISettings{
			LogFile:  "pokehand.log",
			Decimals: 2,
		},
		Defaults: &FieldDefaults{
			HpThreshold: "70",
			BelowCount:  "",
			AboveCount:  "",
		},
	}
}

// Load reads configuration from an HCL file. A missing file is not an
// error; the defaults are returned.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing blocks and values.
	defaults := Default()

	if config.UI == nil {
		config.UI = defaults.UI
	} else {
		if config.UI.LogFile == "" {
			config.UI.LogFile = defaults.UI.LogFile
		}
		if config.UI.Decimals == 0 {
			config.UI.Decimals = defaults.UI.Decimals
		}
	}

	if config.Defaults == nil {
		config.Defaults = defaults.Defaults
	} else if config.Defaults.HpThreshold == "" {
		config.Defaults.HpThreshold = defaults.Defaults.HpThreshold
	}

	return &config, nil
}

// Validate checks the configuration for values the UI cannot render.
func (c *Config) Validate() error {
	if c.UI.Decimals < 0 || c.UI.Decimals > 10 {
		return fmt.Errorf("decimals must be between 0 and 10, got %d", c.UI.Decimals)
	}
	return nil
}
