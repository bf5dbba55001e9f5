package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-dolly/common"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestParseKeepsDefaultsForMissingFields(t *testing.T) {
	cfg, err := Parse([]byte(`{"max_forward_offset": 5, "scroll_zoom_enabled": true}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.MaxForwardOffset != 5 || !cfg.ScrollZoomEnabled {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	def := DefaultConfig()
	if cfg.PinchSensitivity != def.PinchSensitivity || cfg.FocusBoundsX != def.FocusBoundsX {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"malformed", `{"max_forward_offset": }`, "failed to parse config"},
		{"zero max offset", `{"max_forward_offset": 0}`, "max_forward_offset"},
		{"negative lerp", `{"focus_lerp_speed": -1}`, "focus_lerp_speed"},
		{"inverted bounds", `{"focus_bounds_z": {"min": 1, "max": -1}}`, "focus_bounds_z"},
	}

	for _, tt := range tests {
		_, err := Parse([]byte(tt.doc))
		if err == nil {
			t.Errorf("%s: Parse succeeded, want error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("%s: error %q does not mention %q", tt.name, err, tt.wantErr)
		}
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxForwardOffset = -1
	cfg.PinchSensitivity = -1
	cfg.FocusBoundsX = common.Range{Min: 1, Max: 0}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate succeeded, want error")
	}
	for _, field := range []string{"max_forward_offset", "pinch_sensitivity", "focus_bounds_x"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not mention %s", err, field)
		}
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "controller.json")
	cfg := DefaultConfig()
	cfg.PinchSensitivity = 0.02
	cfg.FocusBoundsZ = common.Range{Min: -2, Max: 1}

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("Load = %+v, want %+v", loaded, cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load error = %v, want a not-exist error", err)
	}
}
