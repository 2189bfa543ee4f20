package host

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/zotley-labs/chip8vm/chip8"
)

func TestTraceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.bin.gz")

	rec, err := NewTraceRecorder(path)
	if err != nil {
		t.Fatalf("NewTraceRecorder: %v", err)
	}

	want := []TraceEntry{
		{PC: 0x200, Opcode: 0x1200, Outcome: chip8.Success, Mnemonic: "JP 0x200"},
		{PC: 0x202, Opcode: 0x6005, Outcome: chip8.Success, Mnemonic: "LD V0, 0x05"},
		{PC: 0x204, Opcode: 0x0000, Outcome: chip8.InvalidOpcode, Mnemonic: ""},
	}
	for _, e := range want {
		if err := rec.Record(e); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	got, err := ReadTrace(path)
	if err != nil {
		t.Fatalf("ReadTrace: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestReadTraceRejectsBadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.gz")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	gz := gzip.NewWriter(f)
	gz.Write([]byte("NOPE"))
	gz.Close()
	f.Close()

	if _, err := ReadTrace(path); err == nil {
		t.Fatal("expected an error for a stream with the wrong magic")
	}
}
