package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

func TestLoadConfig(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "config.json")
	data := `{"width": 20, "boundary": "bounded", "pattern": "glider", "workers": 4, "frame_rate": 1000000}`
	if err := os.WriteFile(filename, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(filename)
	if err != nil {
		t.Fatalf("LoadConfig err = %v", err)
	}
	want := DefaultConfig()
	want.Width = 20
	want.Boundary = "bounded"
	want.Pattern = "glider"
	want.Workers = 4
	want.FrameRate = time.Millisecond
	if config != want {
		t.Fatalf("config = %+v\nwant %+v", config, want)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfig(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err = %v", err)
	}

	broken := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(broken, []byte("{"), 0o600); err != nil {
		t.Fatal(err)
	}
	config, err := LoadConfig(broken)
	if err == nil {
		t.Fatal("broken file loaded")
	}
	if config != DefaultConfig() {
		t.Fatalf("config = %+v, want defaults", config)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("GOL_WIDTH", "12")
	t.Setenv("GOL_BOUNDARY", "bounded")
	t.Setenv("GOL_FRAME_RATE", "250ms")
	t.Setenv("GOL_COLOR", "false")

	config := DefaultConfig()
	if err := ApplyEnv(&config); err != nil {
		t.Fatalf("ApplyEnv err = %v", err)
	}
	if config.Width != 12 || config.Boundary != "bounded" || config.FrameRate != 250*time.Millisecond || config.Color {
		t.Fatalf("config = %+v", config)
	}
	if config.Height != DefaultConfig().Height {
		t.Fatalf("Height = %d, unset variables must keep the current value", config.Height)
	}

	t.Setenv("GOL_WORKERS", "many")
	if err := ApplyEnv(&config); err == nil {
		t.Fatal("ApplyEnv accepted GOL_WORKERS=many")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		change func(*Config)
		want   error
	}{
		{"defaults", func(*Config) {}, nil},
		{"pattern", func(c *Config) { c.Pattern = "beacon" }, nil},
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidConfig},
		{"negative height", func(c *Config) { c.Height = -1 }, ErrInvalidConfig},
		{"density", func(c *Config) { c.RandomDensity = 1.5 }, ErrInvalidConfig},
		{"workers", func(c *Config) { c.Workers = -2 }, ErrInvalidConfig},
		{"frame rate", func(c *Config) { c.FrameRate = -time.Second }, ErrInvalidConfig},
		{"generations", func(c *Config) { c.MaxGenerations = -1 }, ErrInvalidConfig},
		{"boundary", func(c *Config) { c.Boundary = "spherical" }, model.ErrUnknownBoundary},
		{"unknown pattern", func(c *Config) { c.Pattern = "spaceship" }, model.ErrUnknownPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.change(&config)
			err := config.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Validate err = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate err = %v, want %v", err, tt.want)
			}
		})
	}
}
