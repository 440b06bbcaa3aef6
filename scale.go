package panzoom

import (
	"errors"
	"fmt"
)

const (
	DefaultZoomIncrement = 0.08 // additive scale change per zoom step
	DefaultMinScale      = 0.2
	DefaultMaxScale      = 8.0
)

// ErrInvalidZoomConfig is returned by ZoomConfig.Validate.
var ErrInvalidZoomConfig = errors.New("panzoom: invalid zoom config")

// ZoomConfig holds the scale stepping constants. The step is additive, so
// zoom speed feels linear near 1 and slower at high scale.
type ZoomConfig struct {
	Increment float64
	MinScale  float64
	MaxScale  float64
}

// DefaultZoomConfig returns the standard stepping constants.
func DefaultZoomConfig() ZoomConfig {
	return ZoomConfig{
		Increment: DefaultZoomIncrement,
		MinScale:  DefaultMinScale,
		MaxScale:  DefaultMaxScale,
	}
}

// Validate reports whether the bounds are positive and ordered and the
// increment is positive.
func (c ZoomConfig) Validate() error {
	if c.Increment <= 0 {
		return fmt.Errorf("%w: increment %v must be positive", ErrInvalidZoomConfig, c.Increment)
	}
	if c.MinScale <= 0 {
		return fmt.Errorf("%w: min scale %v must be positive", ErrInvalidZoomConfig, c.MinScale)
	}
	if c.MaxScale < c.MinScale {
		return fmt.Errorf("%w: max scale %v below min scale %v", ErrInvalidZoomConfig, c.MaxScale, c.MinScale)
	}
	return nil
}

// Clamp restricts scale to [MinScale, MaxScale].
func (c ZoomConfig) Clamp(scale float64) float64 {
	if scale < c.MinScale {
		return c.MinScale
	}
	if scale > c.MaxScale {
		return c.MaxScale
	}
	return scale
}

// Step moves scale one increment in dir and clamps the result. DirNone
// returns the clamped input.
func (c ZoomConfig) Step(scale float64, dir Direction) float64 {
	return c.Clamp(scale + float64(dir)*c.Increment)
}
