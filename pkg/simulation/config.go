package simulation

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lao-tseu-is-alive/go-robot-flock/pkg/flock"
	"github.com/lao-tseu-is-alive/go-robot-flock/pkg/geometry"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed flock.schema.json
var schemaJSON string

// AgentConfig is the initial state of one robot as written in a config file.
type AgentConfig struct {
	ID       string            `json:"id"`
	Position geometry.Vector2D `json:"position"`
	Heading  geometry.Vector2D `json:"heading"`
}

type WeightsConfig struct {
	Previous   float64 `json:"previous"`
	Separation float64 `json:"separation"`
	Alignment  float64 `json:"alignment"`
	Cohesion   float64 `json:"cohesion"`
}

type RadiiConfig struct {
	Separation float64 `json:"separation"`
	Alignment  float64 `json:"alignment"`
	Cohesion   float64 `json:"cohesion"`
}

// ViewConfig describes how simulation units are mapped to pixels.
type ViewConfig struct {
	WindowWidth  int     `json:"windowWidth"`
	WindowHeight int     `json:"windowHeight"`
	UnitSize     float64 `json:"unitSize"`  // pixels per simulation unit
	GraphSize    int     `json:"graphSize"` // grid cells along each axis
	OriginX      float64 `json:"originX"`   // pixel position of the simulation origin
	OriginY      float64 `json:"originY"`

	FramesPerTick int `json:"framesPerTick"` // frames between two ticks while running
}

type Config struct {
	// Population
	ExpectedPopulation int           `json:"expectedPopulation"`
	Agents             []AgentConfig `json:"agents"`

	// Tuning, can be changed live from the view
	Weights WeightsConfig `json:"weights"`
	Radii   RadiiConfig   `json:"radii"`

	View ViewConfig `json:"view"`

	// AskTimeoutMs bounds every request sent to the world actor.
	AskTimeoutMs int `json:"askTimeoutMs"`
}

// DefaultConfig returns the ten robots of the reference layout with a safe tuning.
func DefaultConfig() *Config {
	specs := flock.DefaultSpecs()
	agents := make([]AgentConfig, len(specs))
	for i, s := range specs {
		agents[i] = AgentConfig{ID: s.ID, Position: s.Position, Heading: s.Heading}
	}

	fc := flock.DefaultConfig()
	return &Config{
		ExpectedPopulation: flock.RobotCount,
		Agents:             agents,
		Weights: WeightsConfig{
			Previous:   fc.Weights.Previous,
			Separation: fc.Weights.Separation,
			Alignment:  fc.Weights.Alignment,
			Cohesion:   fc.Weights.Cohesion,
		},
		Radii: RadiiConfig{
			Separation: fc.Radii.Separation,
			Alignment:  fc.Radii.Alignment,
			Cohesion:   fc.Radii.Cohesion,
		},
		View: ViewConfig{
			WindowWidth:   800,
			WindowHeight:  800,
			UnitSize:      10,
			GraphSize:     60,
			OriginX:       100,
			OriginY:       700,
			FramesPerTick: 10,
		},
		AskTimeoutMs: 1000,
	}
}

// Specs converts the agents of the config into engine specs.
func (c *Config) Specs() []flock.AgentSpec {
	specs := make([]flock.AgentSpec, len(c.Agents))
	for i, a := range c.Agents {
		specs[i] = flock.AgentSpec{ID: a.ID, Position: a.Position, Heading: a.Heading}
	}
	return specs
}

// FlockConfig returns the tuning part of the config.
func (c *Config) FlockConfig() flock.Config {
	return flock.Config{
		Weights: flock.Weights{
			Previous:   c.Weights.Previous,
			Separation: c.Weights.Separation,
			Alignment:  c.Weights.Alignment,
			Cohesion:   c.Weights.Cohesion,
		},
		Radii: flock.Radii{
			Separation: c.Radii.Separation,
			Alignment:  c.Radii.Alignment,
			Cohesion:   c.Radii.Cohesion,
		},
	}
}

// AskTimeout returns AskTimeoutMs as a duration.
func (c *Config) AskTimeout() time.Duration {
	return time.Duration(c.AskTimeoutMs) * time.Millisecond
}

// Validate checks that the agents can build a population of ExpectedPopulation robots.
// The returned error matches flock.ErrConfiguration.
func (c *Config) Validate() error {
	if _, err := flock.Initialize(c.Specs(), c.ExpectedPopulation); err != nil {
		return err
	}
	return nil
}

// LoadConfig loads configuration from a JSON or TOML file and validates it against the schema.
// The format is chosen from the file extension, anything but .toml is read as JSON.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return loadConfig(configFile, sch)
}

// LoadConfigDefaultSchema is LoadConfig with the schema embedded in the binary.
func LoadConfigDefaultSchema(configFile string) (*Config, error) {
	sch, err := jsonschema.CompileString("flock.schema.json", schemaJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to compile embedded schema: %w", err)
	}
	return loadConfig(configFile, sch)
}

func loadConfig(configFile string, sch *jsonschema.Schema) (*Config, error) {
	// 2. Read Config File
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(configFile), ".toml") {
		if b, err = tomlToJSON(b); err != nil {
			return nil, err
		}
	}

	// 3. Validate
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal into Struct, over the defaults so optional sections keep them
	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", configFile, err)
	}
	return cfg, nil
}

// tomlToJSON re-encodes a TOML document as JSON so both formats share the schema
// validation and the json struct tags.
func tomlToJSON(b []byte) ([]byte, error) {
	var doc map[string]interface{}
	if _, err := toml.Decode(string(b), &doc); err != nil {
		return nil, fmt.Errorf("failed to decode config toml: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert config toml: %w", err)
	}
	return out, nil
}
