package host

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/zotley-labs/chip8vm/chip8"
)

func TestSaveScreenshot(t *testing.T) {
	cpu := chip8.New(chip8.Quirks{}, 1)
	fb := cpu.Framebuffer()
	fb[0] = 1
	fb[1] = 1

	path := filepath.Join(t.TempDir(), "shot.png")
	if err := SaveScreenshot(cpu, path, 4); err != nil {
		t.Fatalf("SaveScreenshot: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening screenshot: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding PNG: %v", err)
	}
	bounds := img.Bounds()
	wantW := chip8.ScreenWidth * 4
	wantH := chip8.ScreenHeight * 4
	if bounds.Dx() != wantW || bounds.Dy() != wantH {
		t.Errorf("image size = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), wantW, wantH)
	}

	r, _, _, _ := img.At(0, 0).RGBA()
	if r == 0 {
		t.Error("expected top-left pixel to be lit (white) after poking fb[0]")
	}
}
