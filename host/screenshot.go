// screenshot.go - framebuffer PNG export, nearest-neighbour upscaled

package host

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/zotley-labs/chip8vm/chip8"
)

// SaveScreenshot renders the CPU's framebuffer to a PNG at path, scaled
// up by scale using nearest-neighbour interpolation so pixels stay hard
// edged rather than blurred.
func SaveScreenshot(cpu *chip8.CPU, path string, scale int) error {
	if scale < 1 {
		scale = 1
	}

	src := image.NewGray(image.Rect(0, 0, chip8.ScreenWidth, chip8.ScreenHeight))
	fb := cpu.Framebuffer()
	for y := 0; y < chip8.ScreenHeight; y++ {
		for x := 0; x < chip8.ScreenWidth; x++ {
			v := byte(0)
			if fb[y*chip8.ScreenWidth+x] != 0 {
				v = 255
			}
			src.SetGray(x, y, color.Gray{Y: v})
		}
	}

	dstW, dstH := chip8.ScreenWidth*scale, chip8.ScreenHeight*scale
	dst := image.NewGray(image.Rect(0, 0, dstW, dstH))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating screenshot file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, dst); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}
