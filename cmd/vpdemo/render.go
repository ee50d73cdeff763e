package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/gogpu/viewport"
	"golang.org/x/image/draw"
)

// checkerCell is the checkerboard cell size in window points.
const checkerCell = 8

var (
	checkerLight = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	checkerDark  = color.RGBA{R: 60, G: 90, B: 160, A: 255}
	background   = color.RGBA{R: 20, G: 20, B: 24, A: 255}
)

// ndcToImage maps normalized device coordinates onto a size x size image:
// (-1, 1) to the top-left corner and (1, -1) to the bottom-right.
func ndcToImage(size int) viewport.Matrix[float64] {
	h := float64(size) / 2
	return viewport.Matrix[float64]{
		{h, 0, h},
		{0, -h, h},
	}
}

// checkerboard returns an image in window points covering the viewport.
func checkerboard(v viewport.Viewport) *image.RGBA {
	rx, ry := v.PixelRatio()
	rw, rh := v.Size()
	w := int(float64(rw) / rx)
	h := int(float64(rh) / ry)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := checkerLight
			if (x/checkerCell+y/checkerCell)%2 == 1 {
				c = checkerDark
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// renderNDC draws the viewport's checkerboard through the viewport
// transform into a size x size image of normalized device space.
func renderNDC(v viewport.Viewport, size int) (*image.RGBA, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	if size <= 0 {
		return nil, fmt.Errorf("invalid output size %d", size)
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	src := checkerboard(v)
	s2d := ndcToImage(size).Multiply(viewport.Transform[float64](v))
	draw.NearestNeighbor.Transform(dst, s2d.Aff3(), src, src.Bounds(), draw.Over, nil)
	return dst, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
