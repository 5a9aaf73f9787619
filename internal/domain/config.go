package domain

import "fmt"

// Config holds project-level configuration loaded from .modgen.yaml.
type Config struct {
	OutputRoot string `yaml:"output_root" json:"output_root,omitempty"`
	Layout     string `yaml:"layout"      json:"layout,omitempty"`
}

// DefaultConfig returns the configuration used when no .modgen.yaml exists.
func DefaultConfig() Config {
	return Config{
		OutputRoot: "src",
		Layout:     string(LayoutColocatedService),
	}
}

// Validate rejects configs with unknown layout modes or empty roots.
func (c Config) Validate() error {
	if c.OutputRoot == "" {
		return fmt.Errorf("output_root must not be empty")
	}
	if c.Layout != "" {
		if _, err := ParseLayoutMode(c.Layout); err != nil {
			return err
		}
	}
	return nil
}
