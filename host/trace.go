// trace.go - gzip-compressed execution trace recorder

package host

import (
	"bufio"
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/zotley-labs/chip8vm/chip8"
)

const (
	traceMagic   = "C8TR"
	traceVersion = 1
)

// TraceEntry is one recorded Step: the address executed, its outcome,
// and the mnemonic the core disassembled for it. This is a linear
// execution log, not a save-state — it cannot be loaded back into a
// CPU, only replayed for inspection.
type TraceEntry struct {
	PC       uint16
	Opcode   uint16
	Outcome  chip8.Outcome
	Mnemonic string
}

// TraceRecorder appends TraceEntry records to a gzip-compressed file as
// a CPU runs, for post-mortem analysis of a session.
type TraceRecorder struct {
	f  *os.File
	gz *gzip.Writer
	bw *bufio.Writer
}

// NewTraceRecorder creates path and writes the trace header.
func NewTraceRecorder(path string) (*TraceRecorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	gz := gzip.NewWriter(f)
	bw := bufio.NewWriter(gz)

	if _, err := bw.WriteString(traceMagic); err != nil {
		f.Close()
		return nil, err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(traceVersion)); err != nil {
		f.Close()
		return nil, err
	}

	return &TraceRecorder{f: f, gz: gz, bw: bw}, nil
}

// Record appends one entry to the trace.
func (r *TraceRecorder) Record(e TraceEntry) error {
	if err := binary.Write(r.bw, binary.LittleEndian, e.PC); err != nil {
		return err
	}
	if err := binary.Write(r.bw, binary.LittleEndian, e.Opcode); err != nil {
		return err
	}
	if err := binary.Write(r.bw, binary.LittleEndian, int32(e.Outcome)); err != nil {
		return err
	}
	mn := []byte(e.Mnemonic)
	if len(mn) > 255 {
		mn = mn[:255]
	}
	if err := r.bw.WriteByte(byte(len(mn))); err != nil {
		return err
	}
	_, err := r.bw.Write(mn)
	return err
}

// Close flushes and closes the underlying gzip stream and file.
func (r *TraceRecorder) Close() error {
	if err := r.bw.Flush(); err != nil {
		return err
	}
	if err := r.gz.Close(); err != nil {
		return err
	}
	return r.f.Close()
}

// ReadTrace decodes a trace file written by TraceRecorder in full.
func ReadTrace(path string) ([]TraceEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("opening gzip reader: %w", err)
	}
	defer gz.Close()

	magic := make([]byte, 4)
	if _, err := io.ReadFull(gz, magic); err != nil {
		return nil, fmt.Errorf("reading magic: %w", err)
	}
	if string(magic) != traceMagic {
		return nil, fmt.Errorf("invalid trace magic: %q", string(magic))
	}

	var version uint32
	if err := binary.Read(gz, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("reading version: %w", err)
	}
	if version != traceVersion {
		return nil, fmt.Errorf("unsupported trace version: %d", version)
	}

	var entries []TraceEntry
	for {
		var e TraceEntry
		var outcome int32

		if err := binary.Read(gz, binary.LittleEndian, &e.PC); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("reading PC: %w", err)
		}
		if err := binary.Read(gz, binary.LittleEndian, &e.Opcode); err != nil {
			return nil, fmt.Errorf("reading opcode: %w", err)
		}
		if err := binary.Read(gz, binary.LittleEndian, &outcome); err != nil {
			return nil, fmt.Errorf("reading outcome: %w", err)
		}
		e.Outcome = chip8.Outcome(outcome)

		mnLen, err := readByte(gz)
		if err != nil {
			return nil, fmt.Errorf("reading mnemonic length: %w", err)
		}
		mn := make([]byte, mnLen)
		if _, err := io.ReadFull(gz, mn); err != nil {
			return nil, fmt.Errorf("reading mnemonic: %w", err)
		}
		e.Mnemonic = string(mn)

		entries = append(entries, e)
	}
	return entries, nil
}

func readByte(r io.Reader) (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}
