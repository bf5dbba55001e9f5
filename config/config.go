// Package config holds the tuning values of the touch camera controller and
// loads/saves them as JSON.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-dolly/common"
)

// Config stores the controller tuning. It is fixed once a controller is built.
type Config struct {
	// Pinch zoom
	MaxForwardOffset  float32 `json:"max_forward_offset"` // furthest dolly distance along the camera forward axis
	PinchSensitivity  float32 `json:"pinch_sensitivity"`  // world units per pixel of pinch distance change
	PositionLerpSpeed float32 `json:"position_lerp_speed"`
	MinYPosition      float32 `json:"min_y_position"` // floor for the composed camera height

	// Focus / pan
	FocusPlaneHeight       float32      `json:"focus_plane_height"`
	FocusLerpSpeed         float32      `json:"focus_lerp_speed"`
	PanActivationThreshold float32      `json:"pan_activation_threshold"`
	FocusBoundsX           common.Range `json:"focus_bounds_x"`
	FocusBoundsZ           common.Range `json:"focus_bounds_z"`

	// Desktop scroll wheel
	ScrollZoomEnabled bool    `json:"scroll_zoom_enabled"`
	ScrollSensitivity float32 `json:"scroll_sensitivity"`
}

// DefaultConfig returns the default tuning.
//
// Returns:
//   - *Config: a new config with default values
func DefaultConfig() *Config {
	return &Config{
		MaxForwardOffset:  3.0,
		PinchSensitivity:  0.01,
		PositionLerpSpeed: 10.0,
		MinYPosition:      0.3,

		FocusPlaneHeight:       0.0,
		FocusLerpSpeed:         10.0,
		PanActivationThreshold: 0.05,
		FocusBoundsX:           common.Range{Min: -0.5, Max: 0.5},
		FocusBoundsZ:           common.Range{Min: -0.5, Max: 0.5},

		ScrollZoomEnabled: false,
		ScrollSensitivity: 1.0,
	}
}

// Validate checks that the config describes a usable controller.
//
// Returns:
//   - error: a joined error listing every invalid field, or nil
func (c *Config) Validate() error {
	var errs []error
	if c.MaxForwardOffset <= 0 {
		errs = append(errs, fmt.Errorf("max_forward_offset must be positive, got %v", c.MaxForwardOffset))
	}
	if c.PinchSensitivity < 0 {
		errs = append(errs, fmt.Errorf("pinch_sensitivity must not be negative, got %v", c.PinchSensitivity))
	}
	if c.PositionLerpSpeed < 0 {
		errs = append(errs, fmt.Errorf("position_lerp_speed must not be negative, got %v", c.PositionLerpSpeed))
	}
	if c.FocusLerpSpeed < 0 {
		errs = append(errs, fmt.Errorf("focus_lerp_speed must not be negative, got %v", c.FocusLerpSpeed))
	}
	if c.PanActivationThreshold < 0 {
		errs = append(errs, fmt.Errorf("pan_activation_threshold must not be negative, got %v", c.PanActivationThreshold))
	}
	if !c.FocusBoundsX.Valid() {
		errs = append(errs, fmt.Errorf("focus_bounds_x is inverted: [%v, %v]", c.FocusBoundsX.Min, c.FocusBoundsX.Max))
	}
	if !c.FocusBoundsZ.Valid() {
		errs = append(errs, fmt.Errorf("focus_bounds_z is inverted: [%v, %v]", c.FocusBoundsZ.Min, c.FocusBoundsZ.Max))
	}
	if c.ScrollSensitivity < 0 {
		errs = append(errs, fmt.Errorf("scroll_sensitivity must not be negative, got %v", c.ScrollSensitivity))
	}
	return errors.Join(errs...)
}

// Load reads a JSON config file on top of DefaultConfig, so missing fields keep
// their defaults. The result is validated.
//
// Parameters:
//   - path: path to the JSON file
//
// Returns:
//   - *Config: the loaded config
//   - error: error if the file cannot be read, parsed or validated
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes JSON config bytes on top of DefaultConfig and validates the result.
//
// Parameters:
//   - data: JSON document
//
// Returns:
//   - *Config: the decoded config
//   - error: error if the document is malformed or invalid
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Save writes the config as indented JSON.
//
// Parameters:
//   - path: destination file
//
// Returns:
//   - error: error if encoding or writing fails
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
