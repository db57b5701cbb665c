package simulation

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lao-tseu-is-alive/go-robot-flock/pkg/flock"
)

const (
	jsonConfigFile = "../../configs/flock.json"
	tomlConfigFile = "../../configs/flock.toml"
	schemaFile     = "flock.schema.json"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v; want nil", err)
	}
	if len(cfg.Agents) != flock.RobotCount {
		t.Errorf("len(Agents) = %d; want %d", len(cfg.Agents), flock.RobotCount)
	}
	if got, want := cfg.FlockConfig(), flock.DefaultConfig(); got != want {
		t.Errorf("FlockConfig() = %+v; want %+v", got, want)
	}
	if got := cfg.AskTimeout(); got != time.Second {
		t.Errorf("AskTimeout() = %v; want 1s", got)
	}
}

func TestLoadConfig_JSON(t *testing.T) {
	cfg, err := LoadConfig(jsonConfigFile, schemaFile)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.ExpectedPopulation != 10 || len(cfg.Agents) != 10 {
		t.Errorf("population = %d/%d; want 10/10", len(cfg.Agents), cfg.ExpectedPopulation)
	}
	specs := cfg.Specs()
	if specs[2].ID != "Robot-02" || specs[2].Position.X != 1 || specs[2].Position.Y != 3 {
		t.Errorf("specs[2] = %+v; want Robot-02 at (1, 3)", specs[2])
	}
	if cfg.Radii.Cohesion != 6 {
		t.Errorf("Radii.Cohesion = %v; want 6", cfg.Radii.Cohesion)
	}
	if cfg.View.UnitSize != 10 || cfg.View.FramesPerTick != 10 {
		t.Errorf("View = %+v; want unitSize 10 and framesPerTick 10", cfg.View)
	}
}

func TestLoadConfigDefaultSchema_TOML(t *testing.T) {
	cfg, err := LoadConfigDefaultSchema(tomlConfigFile)
	if err != nil {
		t.Fatalf("LoadConfigDefaultSchema() error = %v", err)
	}

	if cfg.Weights.Previous != 0.5 || cfg.Weights.Cohesion != 0.1 {
		t.Errorf("Weights = %+v; want previous 0.5 and cohesion 0.1", cfg.Weights)
	}
	if cfg.Radii.Separation != 1.5 {
		t.Errorf("Radii.Separation = %v; want 1.5", cfg.Radii.Separation)
	}
	// view is partial in the file, the rest keeps the defaults
	if cfg.View.UnitSize != 12 || cfg.View.FramesPerTick != 6 {
		t.Errorf("View = %+v; want unitSize 12 and framesPerTick 6", cfg.View)
	}
	if cfg.View.OriginX != DefaultConfig().View.OriginX {
		t.Errorf("View.OriginX = %v; want default %v", cfg.View.OriginX, DefaultConfig().View.OriginX)
	}
	if len(cfg.Agents) != 10 || cfg.Agents[9].ID != "Robot-09" {
		t.Errorf("Agents = %v; want 10 robots ending with Robot-09", cfg.Agents)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	const agent = `{"id": "a", "position": {"x": 0, "y": 0}, "heading": {"x": 0.5, "y": 0}}`
	const tuning = `"weights": {"previous": 0.4, "separation": 0.2, "alignment": 0.2, "cohesion": 0.1},
		"radii": {"separation": 1, "alignment": 2, "cohesion": 3}`

	tests := []struct {
		name       string
		file       string
		content    string
		wantConfig bool // the error must match flock.ErrConfiguration
	}{
		{"Not JSON", "bad.json", `{"expectedPopulation": `, false},
		{"Missing weights", "noweights.json", `{"expectedPopulation": 1, "agents": [` + agent + `],
			"radii": {"separation": 1, "alignment": 2, "cohesion": 3}}`, false},
		{"Negative radius", "radius.json", `{"expectedPopulation": 1, "agents": [` + agent + `],
			"weights": {"previous": 0.4, "separation": 0.2, "alignment": 0.2, "cohesion": 0.1},
			"radii": {"separation": -1, "alignment": 2, "cohesion": 3}}`, false},
		{"Empty id", "emptyid.json", `{"expectedPopulation": 1, "agents": [{"id": "", "position": {"x": 0, "y": 0}, "heading": {"x": 0, "y": 0}}], ` + tuning + `}`, false},
		{"Unknown field", "unknown.json", `{"expectedPopulation": 1, "agents": [` + agent + `], "speed": 3, ` + tuning + `}`, false},
		{"Population mismatch", "mismatch.json", `{"expectedPopulation": 2, "agents": [` + agent + `], ` + tuning + `}`, true},
		{"Duplicate id", "dup.json", `{"expectedPopulation": 2, "agents": [` + agent + `, ` + agent + `], ` + tuning + `}`, true},
		{"Not TOML", "bad.toml", "expectedPopulation = = 1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, tt.file, tt.content)

			cfg, err := LoadConfig(path, schemaFile)
			if err == nil {
				t.Fatalf("LoadConfig() = %+v; want an error", cfg)
			}
			if got := errors.Is(err, flock.ErrConfiguration); got != tt.wantConfig {
				t.Errorf("errors.Is(%v, ErrConfiguration) = %v; want %v", err, got, tt.wantConfig)
			}
		})
	}
}

func TestLoadConfig_MissingFiles(t *testing.T) {
	if _, err := LoadConfig("does-not-exist.json", schemaFile); err == nil {
		t.Error("LoadConfig() with a missing config file: want an error")
	}
	if _, err := LoadConfig(jsonConfigFile, "does-not-exist.schema.json"); err == nil {
		t.Error("LoadConfig() with a missing schema file: want an error")
	}
}
