// Package raster turns rendered symbol SVG into PNG previews.
//
// Text is not rasterized: the SVG rasterizer has no font support and skips
// text elements, so previews show geometry only.
package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/OpenTraceLab/symsvg/internal/logging"
)

// MaxSize is the largest canvas edge Rasterize accepts.
const MaxSize = 8192

// Rasterize draws an SVG document onto a size x size white canvas.
func Rasterize(svg io.Reader, size int) (*image.RGBA, error) {
	if size <= 0 || size > MaxSize {
		return nil, fmt.Errorf("invalid raster size %d, want 1..%d", size, MaxSize)
	}

	icon, err := oksvg.ReadIconStream(svg, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse svg: %w", err)
	}
	if icon.ViewBox.W == 0 || icon.ViewBox.H == 0 {
		icon.ViewBox.W, icon.ViewBox.H = float64(size), float64(size)
	}
	logging.Logger().Debug("rasterize", "size", size, "viewBox", icon.ViewBox)

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	icon.SetTarget(0, 0, float64(size), float64(size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)

	return img, nil
}

// Encode rasterizes an SVG document and writes it to w as PNG.
func Encode(w io.Writer, svg []byte, size int) error {
	img, err := Rasterize(bytes.NewReader(svg), size)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
