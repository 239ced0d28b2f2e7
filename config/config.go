package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-snake/constants"
)

//go:embed config.schema.json
var schemaJSON string

const schemaURL = "config.schema.json"

// Config holds the tunables of a session
// The zero-argument defaults reproduce the classic game exactly
type Config struct {
	FrameRate      int    `yaml:"frame_rate"`
	InitialSpeed   *int   `yaml:"initial_speed,omitempty"`
	StrictBounds   bool   `yaml:"strict_bounds"`
	FruitPlacement string `yaml:"fruit_placement"`
	SnakeGlyph     string `yaml:"snake_glyph"`
	FruitGlyph     string `yaml:"fruit_glyph"`
	QuitKey        string `yaml:"quit_key"`
}

// Default returns the built-in configuration
func Default() Config {
	speed := constants.InitialSpeed
	return Config{
		FrameRate:      constants.FrameRate,
		InitialSpeed:   &speed,
		StrictBounds:   false,
		FruitPlacement: "rowcol",
		SnakeGlyph:     string(constants.SnakeGlyph),
		FruitGlyph:     string(constants.FruitGlyph),
		QuitKey:        string(constants.QuitKey),
	}
}

// Load reads a YAML file over the defaults; an empty path returns the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		cfg.Normalize()
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	return Parse(b)
}

// Parse decodes YAML data, validating it against the embedded schema first
func Parse(data []byte) (Config, error) {
	cfg := Default()

	if err := validateSchema(data); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	// Speed left out of the file follows the frame rate
	cfg.InitialSpeed = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Normalize fills unset fields with defaults
func (c *Config) Normalize() {
	def := Default()
	if c.FrameRate <= 0 {
		c.FrameRate = def.FrameRate
	}
	if c.InitialSpeed == nil {
		speed := c.FrameRate / 3
		c.InitialSpeed = &speed
	}
	c.FruitPlacement = strings.ToLower(strings.TrimSpace(c.FruitPlacement))
	if c.FruitPlacement == "" {
		c.FruitPlacement = def.FruitPlacement
	}
	if c.SnakeGlyph == "" {
		c.SnakeGlyph = def.SnakeGlyph
	}
	if c.FruitGlyph == "" {
		c.FruitGlyph = def.FruitGlyph
	}
	if c.QuitKey == "" {
		c.QuitKey = def.QuitKey
	}
}

// Validate checks cross-field constraints the schema cannot express
func (c Config) Validate() error {
	if c.FrameRate <= 0 {
		return fmt.Errorf("frame_rate must be positive, got %d", c.FrameRate)
	}
	if c.InitialSpeed != nil && *c.InitialSpeed < constants.MinSpeed {
		return fmt.Errorf("initial_speed must be >= %d, got %d", constants.MinSpeed, *c.InitialSpeed)
	}
	glyphs := []struct{ name, value string }{
		{"snake_glyph", c.SnakeGlyph},
		{"fruit_glyph", c.FruitGlyph},
		{"quit_key", c.QuitKey},
	}
	for _, g := range glyphs {
		if utf8.RuneCountInString(g.value) != 1 {
			return fmt.Errorf("%s must be a single character, got %q", g.name, g.value)
		}
	}
	if c.SnakeGlyph == c.FruitGlyph {
		return fmt.Errorf("snake_glyph and fruit_glyph must differ")
	}
	return nil
}

// Speed returns the initial speed threshold
func (c Config) Speed() int {
	if c.InitialSpeed == nil {
		return c.FrameRate / 3
	}
	return *c.InitialSpeed
}

// SnakeRune returns the snake glyph as a rune
func (c Config) SnakeRune() rune { return firstRune(c.SnakeGlyph) }

// FruitRune returns the fruit glyph as a rune
func (c Config) FruitRune() rune { return firstRune(c.FruitGlyph) }

// QuitRune returns the quit key as a rune
func (c Config) QuitRune() rune { return firstRune(c.QuitKey) }

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0
	}
	return r
}

var compiledSchema *jsonschema.Schema

func schema() (*jsonschema.Schema, error) {
	if compiledSchema != nil {
		return compiledSchema, nil
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}
	s, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	compiledSchema = s
	return s, nil
}

// validateSchema checks the raw YAML document shape before decoding
func validateSchema(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc == nil {
		// Empty file: defaults
		return nil
	}

	// Round-trip through JSON so the validator sees JSON-native types
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config is not a plain mapping: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}

	s, err := schema()
	if err != nil {
		return err
	}
	return s.Validate(v)
}
