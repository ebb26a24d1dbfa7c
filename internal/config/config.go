// Package config handles configuration loading shared by the server and the extractor.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure.
type Config struct {
	// Aliases maps a canonical name to extra accepted guesses.
	Aliases map[string][]string `yaml:"aliases,omitempty" json:"-"`

	Title         string `yaml:"title" json:"title"`
	StaticDir     string `yaml:"static_dir" json:"static_dir"`
	TemplateDir   string `yaml:"template_dir" json:"template_dir"`
	GeoJSON       string `yaml:"geojson" json:"geojson"`
	Property      string `yaml:"property" json:"property"`
	AliasProperty string `yaml:"alias_property,omitempty" json:"alias_property,omitempty"`

	ContinentProperty string `yaml:"continent_property,omitempty" json:"continent_property,omitempty"`

	Output Output `yaml:"output" json:"-"`
}

// Output describes where and how the extractor writes its name lists.
type Output struct {
	Dir        string `yaml:"dir,omitempty"`
	Text       string `yaml:"text"`
	Literal    string `yaml:"literal"`
	Package    string `yaml:"package"`
	Identifier string `yaml:"identifier"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Title:         "Mapping Games",
		StaticDir:     "static",
		TemplateDir:   "templates",
		GeoJSON:       "static/countries.geo.json",
		Property:      "name_en",
		AliasProperty: "aliases",

		ContinentProperty: "continent",
		Output: Output{
			Text:       "names_en.txt",
			Literal:    "names_en.go",
			Package:    "names",
			Identifier: "Names",
		},
	}
}

// Load reads the YAML configuration file from the specified path on top of
// the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
