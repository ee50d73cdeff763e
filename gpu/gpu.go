//go:build !nogpu

// Package gpu applies a viewport to a WebGPU render pass and feeds its
// transform to a vertex shader.
//
// Viewport rects use a lower-left origin; WebGPU render passes use a
// top-left origin in frame-buffer pixels. Apply converts between the two,
// sets the pass viewport, and clips the scissor rect to the frame buffer.
//
// The transform is uploaded as a 32-byte uniform (see UniformBytes) and
// consumed by the embedded WGSL shader (see ShaderSource):
//
//	m := viewport.Transform[float32](v)
//	queue.WriteBuffer(uniformBuf, 0, gpu.UniformBytes(m))
//	if err := gpu.Apply(pass, v); err != nil {
//	    return err
//	}
//
// Build with -tags nogpu to exclude the wgpu and naga dependencies.
package gpu

import (
	"fmt"

	"github.com/gogpu/viewport"
	"github.com/gogpu/wgpu/hal"
)

// PassEncoder is the part of hal.RenderPassEncoder that Apply uses.
type PassEncoder interface {
	SetViewport(x, y, width, height, minDepth, maxDepth float32)
	SetScissorRect(x, y, width, height uint32)
}

var _ PassEncoder = hal.RenderPassEncoder(nil)

// PassRect returns the viewport rect in render-pass coordinates: frame-buffer
// pixels with the origin at the top-left.
func PassRect(v viewport.Viewport) (x, y, width, height float32) {
	rx, ry := v.Origin()
	rw, rh := v.Size()
	top := int64(v.DrawSize[1]) - (int64(ry) + int64(rh))
	return float32(rx), float32(top), float32(rw), float32(rh)
}

// ScissorRect returns the pass rect clipped to the frame buffer.
// clipped reports whether any part of the rect lay outside. A rect entirely
// outside the frame buffer yields a zero-sized scissor.
func ScissorRect(v viewport.Viewport) (x, y, width, height uint32, clipped bool) {
	rx, ry := v.Origin()
	rw, rh := v.Size()
	dw, dh := int64(v.DrawSize[0]), int64(v.DrawSize[1])

	x0 := int64(rx)
	y0 := dh - (int64(ry) + int64(rh))
	x1 := x0 + int64(rw)
	y1 := y0 + int64(rh)

	cx0, cy0 := clamp(x0, 0, dw), clamp(y0, 0, dh)
	cx1, cy1 := clamp(x1, cx0, dw), clamp(y1, cy0, dh)

	clipped = cx0 != x0 || cy0 != y0 || cx1 != x1 || cy1 != y1
	return uint32(cx0), uint32(cy0), uint32(cx1 - cx0), uint32(cy1 - cy0), clipped
}

// Apply sets the render pass viewport and scissor rect for v, with the
// depth range 0..1.
//
// Apply returns an error, and leaves the pass untouched, when v does not
// validate. A rect extending past the frame buffer is still applied; the
// scissor is clipped and a warning is logged.
func Apply(enc PassEncoder, v viewport.Viewport) error {
	if err := v.Validate(); err != nil {
		return fmt.Errorf("gpu: apply viewport: %w", err)
	}

	x, y, w, h := PassRect(v)
	enc.SetViewport(x, y, w, h, 0, 1)

	sx, sy, sw, sh, clipped := ScissorRect(v)
	if clipped {
		viewport.Logger().Warn("gpu: viewport rect exceeds frame buffer, scissor clipped",
			"viewport", v.String(),
			"scissor", [4]uint32{sx, sy, sw, sh})
	}
	enc.SetScissorRect(sx, sy, sw, sh)
	return nil
}

func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
