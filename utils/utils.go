// Package utils holds image file helpers shared by the library and the
// command line tool.
package utils

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/lucasb-eyer/go-colorful"
)

// OpenImage decodes any registered raster format from disk.
func OpenImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// SaveImage writes img as PNG.
func SaveImage(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// SaveSwatch renders one square tile per color, left to right, for eyeball
// checks of a detected background color set.
func SaveSwatch(palette []colorful.Color, tileSize int, path string) error {
	if len(palette) == 0 {
		return fmt.Errorf("empty palette")
	}
	if tileSize <= 0 {
		tileSize = 64
	}

	img := image.NewNRGBA(image.Rect(0, 0, tileSize*len(palette), tileSize))
	for i, c := range palette {
		tile := color.NRGBA{
			R: uint8(min(255.0, max(0.0, c.R*255))),
			G: uint8(min(255.0, max(0.0, c.G*255))),
			B: uint8(min(255.0, max(0.0, c.B*255))),
			A: 255,
		}
		for y := 0; y < tileSize; y++ {
			for x := i * tileSize; x < (i+1)*tileSize; x++ {
				img.SetNRGBA(x, y, tile)
			}
		}
	}
	return SaveImage(img, path)
}

// CheckDecodeSupport verifies at startup that a PNG codec is registered by
// round-tripping a single pixel through the image decode registry. A build
// without PNG support gets a clear capability error instead of per-file
// decode failures later.
func CheckDecodeSupport() error {
	probe := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	var buf bytes.Buffer
	if err := png.Encode(&buf, probe); err != nil {
		return fmt.Errorf("png support missing: %w", err)
	}
	if _, format, err := image.Decode(&buf); err != nil || format != "png" {
		return fmt.Errorf("png decoder not registered (got format %q): %w", format, err)
	}
	return nil
}
