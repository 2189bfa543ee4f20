// memory.go - RAM layout constants and the built-in hex glyph fontset

package chip8

const (
	// MemSize is the total addressable RAM, in bytes.
	MemSize = 4096

	// FontsetBase is where the 16-glyph hex fontset is preloaded.
	FontsetBase = 0x050

	// fontGlyphSize is the number of bytes per glyph sprite.
	fontGlyphSize = 5

	// ProgramStart is both the initial PC and the first byte of the ROM
	// image once loaded.
	ProgramStart = 0x200

	// MaxROMSize is the largest ROM image LoadROM will accept: the span
	// from ProgramStart to the top of RAM.
	MaxROMSize = MemSize - ProgramStart

	// ScreenWidth and ScreenHeight give the monochrome framebuffer's
	// dimensions in pixels.
	ScreenWidth  = 64
	ScreenHeight = 32

	// framebufferSize is the total pixel count, indexed row-major as
	// y*ScreenWidth + x.
	framebufferSize = ScreenWidth * ScreenHeight
)

// fontset holds the 16 hex-digit glyph sprites (5 bytes each) loaded at
// FontsetBase during New. Each byte is one row of an 8-pixel-wide glyph,
// using only the top nibble.
var fontset = [16 * fontGlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}
