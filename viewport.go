package viewport

import (
	"errors"
	"fmt"
)

// Viewport stores viewport information.
//
// All fields are public and no invariants are enforced; callers typically
// rebuild or mutate a Viewport every frame from whatever their windowing
// layer reports. Use Validate to check the sizes before deriving a transform.
type Viewport struct {
	// Rect is the viewport in pixels: x, y, width, height.
	// (x, y) is the lower-left corner.
	Rect [4]int32

	// DrawSize is the size of the frame buffer in pixels.
	DrawSize [2]uint32

	// WindowSize is the size of the window in points.
	WindowSize [2]uint32
}

// Errors reported by Validate.
var (
	ErrEmptyRect     = errors.New("viewport: rect has non-positive width or height")
	ErrEmptyDrawSize = errors.New("viewport: draw size has zero width or height")
	ErrEmptyWindow   = errors.New("viewport: window size has zero width or height")
)

// Full returns a viewport whose rect covers the whole frame buffer.
func Full(drawSize, windowSize [2]uint32) Viewport {
	return Viewport{
		Rect:       [4]int32{0, 0, int32(drawSize[0]), int32(drawSize[1])},
		DrawSize:   drawSize,
		WindowSize: windowSize,
	}
}

// Origin returns the lower-left corner of the rect.
func (v Viewport) Origin() (x, y int32) {
	return v.Rect[0], v.Rect[1]
}

// Size returns the width and height of the rect.
func (v Viewport) Size() (width, height int32) {
	return v.Rect[2], v.Rect[3]
}

// PixelRatio returns the device-pixel ratio on each axis: frame-buffer
// pixels per window point. Zero window sizes give Inf or NaN.
func (v Viewport) PixelRatio() (x, y float64) {
	return float64(v.DrawSize[0]) / float64(v.WindowSize[0]),
		float64(v.DrawSize[1]) / float64(v.WindowSize[1])
}

// Validate reports every size that would make Transform produce non-finite
// entries. The returned error matches ErrEmptyRect, ErrEmptyDrawSize and
// ErrEmptyWindow with errors.Is.
//
// A zero draw size does not break the transform (the scale becomes zero),
// but such a viewport covers nothing and is reported as well.
func (v Viewport) Validate() error {
	var errs []error
	if v.Rect[2] <= 0 || v.Rect[3] <= 0 {
		errs = append(errs, fmt.Errorf("%w: %dx%d", ErrEmptyRect, v.Rect[2], v.Rect[3]))
	}
	if v.DrawSize[0] == 0 || v.DrawSize[1] == 0 {
		errs = append(errs, fmt.Errorf("%w: %dx%d", ErrEmptyDrawSize, v.DrawSize[0], v.DrawSize[1]))
	}
	if v.WindowSize[0] == 0 || v.WindowSize[1] == 0 {
		errs = append(errs, fmt.Errorf("%w: %dx%d", ErrEmptyWindow, v.WindowSize[0], v.WindowSize[1]))
	}
	return errors.Join(errs...)
}

// String returns a compact description for logs.
func (v Viewport) String() string {
	return fmt.Sprintf("Viewport{rect: %d,%d %dx%d, draw: %dx%d, window: %dx%d}",
		v.Rect[0], v.Rect[1], v.Rect[2], v.Rect[3],
		v.DrawSize[0], v.DrawSize[1],
		v.WindowSize[0], v.WindowSize[1])
}
