// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package viewport

import (
	"math"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// FromWindow returns a full-frame viewport for a window.
//
// The provider reports its size in logical points; the frame buffer size is
// that size multiplied by the scale factor and rounded to whole pixels:
//
//	wp := gpucontext.NullWindowProvider{W: 800, H: 600, SF: 2.0}
//	v := viewport.FromWindow(wp) // draw 1600x1200, window 800x600
//
// Negative sizes reported by the provider are treated as zero.
func FromWindow(wp gpucontext.WindowProvider) Viewport {
	w, h := wp.Size()
	scale := wp.ScaleFactor()

	window := [2]uint32{clampSize(float64(w)), clampSize(float64(h))}
	draw := [2]uint32{
		clampSize(math.Round(float64(window[0]) * scale)),
		clampSize(math.Round(float64(window[1]) * scale)),
	}

	v := Full(draw, window)
	Logger().Debug("viewport: from window",
		"window", window, "scale", scale, "draw", draw)
	return v
}

// FromExtent returns a full-frame viewport for a surface texture of the given
// extent shown in a window of windowW x windowH points.
// DepthOrArrayLayers is ignored.
func FromExtent(ext gputypes.Extent3D, windowW, windowH uint32) Viewport {
	v := Full([2]uint32{ext.Width, ext.Height}, [2]uint32{windowW, windowH})
	Logger().Debug("viewport: from extent",
		"extent", [2]uint32{ext.Width, ext.Height}, "window", v.WindowSize)
	return v
}

// clampSize converts a size to uint32, mapping negative and NaN values to
// zero and saturating at the int32 range so the rect stays representable.
func clampSize(f float64) uint32 {
	if !(f > 0) {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return uint32(f)
}
