// romfile.go - filesystem ROM loading

package host

import (
	"errors"
	"io"
	"os"

	"github.com/zotley-labs/chip8vm/chip8"
)

// LoadROMFile reads a ROM image from disk and returns its raw bytes.
// It does not touch a CPU; callers pass the result to CPU.LoadROM so
// that oversized-ROM handling stays inside the core's own outcome model.
func LoadROMFile(path string) ([]byte, chip8.Outcome) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, chip8.RomNotFound
		}
		return nil, chip8.RomOpenFailed
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, chip8.RomReadFailed
	}
	return data, chip8.Success
}
