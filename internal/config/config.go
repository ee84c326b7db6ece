// Package config loads the form and widget settings from a YAML or TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"floatlabel/internal/floatlabel"
)

// Format selects the decoder.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Config holds widget defaults shared by every field, plus the fields themselves.
// Absent keys fall back to the floatlabel defaults; an explicit 0 or "0s" is kept.
type Config struct {
	BorderColor       string  `yaml:"borderColor" toml:"borderColor"`
	LabelHeight       *int    `yaml:"labelHeight" toml:"labelHeight"`
	InputPadding      *int    `yaml:"inputPadding" toml:"inputPadding"`
	Height            *int    `yaml:"height" toml:"height"`
	AnimationDuration string  `yaml:"animationDuration" toml:"animationDuration"` // e.g. "200ms"
	Easing            string  `yaml:"easing" toml:"easing"`                       // curve name
	UseNativeDriver   bool    `yaml:"useNativeDriver" toml:"useNativeDriver"`
	Fields            []Field `yaml:"fields" toml:"fields"`
}

// Field describes one input in the form.
type Field struct {
	Name      string  `yaml:"name" toml:"name"`
	Label     string  `yaml:"label" toml:"label"`
	Default   string  `yaml:"default" toml:"default"`
	Value     *string `yaml:"value" toml:"value"` // set = controlled by the form
	Editable  *bool   `yaml:"editable" toml:"editable"`
	Lowercase bool    `yaml:"lowercase" toml:"lowercase"` // owner lower-cases a controlled value
}

// Controlled reports whether the form owns the field's value.
func (f Field) Controlled() bool {
	return f.Value != nil
}

// Default returns the built-in form: a controlled, lower-cased email and a free
// name field.
func Default() Config {
	email := ""
	return Config{
		Fields: []Field{
			{Name: "email", Label: "Email", Value: &email, Lowercase: true},
			{Name: "name", Label: "Name"},
		},
	}
}

// Load reads path, choosing the decoder from its extension.
func Load(path string) (Config, error) {
	format, err := formatFor(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data in the given format. A config without fields gets the default
// fields.
func Parse(data []byte, format Format) (Config, error) {
	var cfg Config
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("unknown config format %q", format)
	}
	if len(cfg.Fields) == 0 {
		cfg.Fields = Default().Fields
	}
	for i, f := range cfg.Fields {
		if f.Name == "" {
			return Config{}, fmt.Errorf("field %d: missing name", i)
		}
	}
	return cfg, nil
}

func formatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("config %q: unsupported extension", path)
	}
}

// Options builds the widget options for f. Sizes and durations are not range
// checked; they go to the renderer and animator as given.
func (c Config) Options(f Field) (floatlabel.Options, error) {
	opts := floatlabel.Options{
		Label:           f.Label,
		BorderColor:     c.BorderColor,
		LabelHeight:     c.LabelHeight,
		InputPadding:    c.InputPadding,
		Height:          c.Height,
		UseNativeDriver: c.UseNativeDriver,
		DefaultValue:    f.Default,
		Editable:        f.Editable,
	}
	if f.Value != nil {
		opts.Value = floatlabel.String(*f.Value)
	}
	if c.AnimationDuration != "" {
		d, err := time.ParseDuration(c.AnimationDuration)
		if err != nil {
			return floatlabel.Options{}, fmt.Errorf("animationDuration: %w", err)
		}
		opts.AnimationDuration = floatlabel.Duration(d)
	}
	curve, ok := floatlabel.CurveByName(c.Easing)
	if !ok {
		return floatlabel.Options{}, fmt.Errorf("easing: unknown curve %q", c.Easing)
	}
	opts.Easing = curve
	return opts, nil
}
