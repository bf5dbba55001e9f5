package camera

import (
	"github.com/Carmen-Shannon/oxy-dolly/common"
	"github.com/Carmen-Shannon/oxy-dolly/config"
)

// TouchControllerOption is a functional option for configuring a TouchController.
type TouchControllerOption func(*touchControllerImpl)

// WithConfig replaces the whole tuning with the given config.
// Options applied after it override individual fields.
//
// Parameters:
//   - cfg: the configuration to copy; nil is ignored
//
// Returns:
//   - TouchControllerOption: functional option to set the configuration
func WithConfig(cfg *config.Config) TouchControllerOption {
	return func(tc *touchControllerImpl) {
		if cfg != nil {
			tc.cfg = *cfg
		}
	}
}

// WithMaxForwardOffset sets how far the camera may dolly along its forward axis.
//
// Parameters:
//   - offset: maximum zoom offset in world units
//
// Returns:
//   - TouchControllerOption: functional option to set the maximum zoom offset
func WithMaxForwardOffset(offset float32) TouchControllerOption {
	return func(tc *touchControllerImpl) {
		tc.cfg.MaxForwardOffset = offset
	}
}

// WithPinchSensitivity sets the world units of zoom per pixel of pinch distance change.
//
// Parameters:
//   - sensitivity: pinch multiplier
//
// Returns:
//   - TouchControllerOption: functional option to set pinch sensitivity
func WithPinchSensitivity(sensitivity float32) TouchControllerOption {
	return func(tc *touchControllerImpl) {
		tc.cfg.PinchSensitivity = sensitivity
	}
}

// WithPinchDirection selects whether pinching in or spreading out moves the camera forward.
//
// Parameters:
//   - direction: the pinch convention
//
// Returns:
//   - TouchControllerOption: functional option to set the pinch direction
func WithPinchDirection(direction PinchDirection) TouchControllerOption {
	return func(tc *touchControllerImpl) {
		tc.pinchDirection = direction
	}
}

// WithPositionLerpSpeed sets the zoom smoothing rate.
//
// Parameters:
//   - speed: approach rate per second
//
// Returns:
//   - TouchControllerOption: functional option to set zoom smoothing
func WithPositionLerpSpeed(speed float32) TouchControllerOption {
	return func(tc *touchControllerImpl) {
		tc.cfg.PositionLerpSpeed = speed
	}
}

// WithMinYPosition sets the floor for the composed camera height.
//
// Parameters:
//   - y: minimum world-space Y
//
// Returns:
//   - TouchControllerOption: functional option to set the height floor
func WithMinYPosition(y float32) TouchControllerOption {
	return func(tc *touchControllerImpl) {
		tc.cfg.MinYPosition = y
	}
}

// WithFocusPlaneHeight sets the height of the ground plane touches are projected onto.
//
// Parameters:
//   - height: world-space Y of the focus plane
//
// Returns:
//   - TouchControllerOption: functional option to set the focus plane height
func WithFocusPlaneHeight(height float32) TouchControllerOption {
	return func(tc *touchControllerImpl) {
		tc.cfg.FocusPlaneHeight = height
	}
}

// WithFocusLerpSpeed sets the focus smoothing rate.
//
// Parameters:
//   - speed: approach rate per second
//
// Returns:
//   - TouchControllerOption: functional option to set focus smoothing
func WithFocusLerpSpeed(speed float32) TouchControllerOption {
	return func(tc *touchControllerImpl) {
		tc.cfg.FocusLerpSpeed = speed
	}
}

// WithPanActivationThreshold sets the zoom offset above which panning and focus are enabled.
//
// Parameters:
//   - threshold: zoom offset in world units
//
// Returns:
//   - TouchControllerOption: functional option to set the activation threshold
func WithPanActivationThreshold(threshold float32) TouchControllerOption {
	return func(tc *touchControllerImpl) {
		tc.cfg.PanActivationThreshold = threshold
	}
}

// WithFocusBounds sets the X and Z bounds for pan targets and the composed position.
//
// Parameters:
//   - x: allowed range on the X axis
//   - z: allowed range on the Z axis
//
// Returns:
//   - TouchControllerOption: functional option to set the focus bounds
func WithFocusBounds(x, z common.Range) TouchControllerOption {
	return func(tc *touchControllerImpl) {
		tc.cfg.FocusBoundsX = x
		tc.cfg.FocusBoundsZ = z
	}
}

// WithScrollZoom enables the desktop scroll wheel as an extra zoom input.
//
// Parameters:
//   - enabled: true to apply Sample.Scroll
//   - sensitivity: world units of zoom per scroll unit
//
// Returns:
//   - TouchControllerOption: functional option to configure scroll zoom
func WithScrollZoom(enabled bool, sensitivity float32) TouchControllerOption {
	return func(tc *touchControllerImpl) {
		tc.cfg.ScrollZoomEnabled = enabled
		tc.cfg.ScrollSensitivity = sensitivity
	}
}

// WithRayCaster sets the ray caster used for ground-plane projection.
// Without this option, a Transform that also implements RayCaster is used.
// Passing nil disables pinch re-centering and panning; zoom still works.
//
// Parameters:
//   - rc: the ray caster, or nil
//
// Returns:
//   - TouchControllerOption: functional option to set the ray caster
func WithRayCaster(rc RayCaster) TouchControllerOption {
	return func(tc *touchControllerImpl) {
		tc.rayCaster = rc
		tc.rayCasterSet = true
	}
}

// WithDebugLogging logs pan state transitions and skipped projections.
//
// Parameters:
//   - enabled: true to log
//
// Returns:
//   - TouchControllerOption: functional option to toggle debug logging
func WithDebugLogging(enabled bool) TouchControllerOption {
	return func(tc *touchControllerImpl) {
		tc.debug = enabled
	}
}
