// main.go - reference host binary for the CHIP-8 core

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/zotley-labs/chip8vm/chip8"
	"github.com/zotley-labs/chip8vm/host"
)

func main() {
	var (
		shiftsUseVY bool
		bnnnUsesVX  bool
		fxAutoIncI  bool
		rate        int
		scale       int
		seed        int64
		debug       bool
		tracePath   string
	)

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.BoolVar(&shiftsUseVY, "quirk-shift-vy", false, "8XY6/8XYE shift the value in VY instead of VX")
	flagSet.BoolVar(&bnnnUsesVX, "quirk-bnnn-vx", false, "BNNN jumps to NNN + VX instead of NNN + V0")
	flagSet.BoolVar(&fxAutoIncI, "quirk-fx-autoinc", false, "FX55/FX65 leave I incremented past the last register touched")
	flagSet.IntVar(&rate, "rate", 700, "instructions executed per second")
	flagSet.IntVar(&scale, "scale", 12, "pixel scale factor for the display window")
	flagSet.Int64Var(&seed, "seed", time.Now().UnixNano(), "seed for the CXNN random-byte instruction (defaults to the current time)")
	flagSet.BoolVar(&debug, "debug", false, "drop into the interactive stepping debugger instead of running")
	flagSet.StringVar(&tracePath, "trace", "", "record every executed instruction to this gzip trace file")

	flagSet.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: chip8 [flags] <rom-file>")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	romPath := flagSet.Arg(0)
	if romPath == "" {
		flagSet.Usage()
		os.Exit(1)
	}

	rom, o := host.LoadROMFile(romPath)
	if !o.Ok() {
		fmt.Fprintf(os.Stderr, "loading %s: %v\n", romPath, o)
		os.Exit(1)
	}

	quirks := chip8.Quirks{
		ShiftsUseVY: shiftsUseVY,
		BnnnUsesVX:  bnnnUsesVX,
		FxAutoIncI:  fxAutoIncI,
	}
	cpu := chip8.New(quirks, uint64(seed))
	if o := cpu.LoadROM(rom); !o.Ok() {
		fmt.Fprintf(os.Stderr, "loading ROM into memory: %v\n", o)
		os.Exit(1)
	}

	var recorder *host.TraceRecorder
	if tracePath != "" {
		var err error
		recorder, err = host.NewTraceRecorder(tracePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "opening trace file: %v\n", err)
			os.Exit(1)
		}
		defer recorder.Close()
	}

	if debug {
		if err := host.RunInteractive(cpu, int(os.Stdin.Fd()), os.Stdin, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "debugger error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	beeper, err := host.NewBeeper(220)
	if err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed, continuing silently: %v\n", err)
	} else {
		beeper.Start()
		defer beeper.Close()
	}

	display := host.NewDisplay(cpu, scale, "chip8vm")

	stepInterval := time.Second / time.Duration(rate)
	lastTimerTick := time.Now()

	display.SetTickFunc(func() {
		if cpu.Halted() {
			return
		}

		// Step() decrements DT/ST once per call, so timers tick at the
		// instruction rate; pace the calls to that rate.
		steps := int(time.Since(lastTimerTick) / stepInterval)
		if steps < 1 {
			steps = 1
		}
		lastTimerTick = time.Now()

		for i := 0; i < steps; i++ {
			pc := cpu.PC
			outcome, mnemonic := cpu.Step()
			if recorder != nil {
				recorder.Record(host.TraceEntry{
					PC:       pc,
					Outcome:  outcome,
					Mnemonic: mnemonic,
				})
			}
			if !outcome.Ok() {
				fmt.Fprintf(os.Stderr, "halted at 0x%04X: %v\n", pc, outcome)
				break
			}
			if beeper != nil {
				beeper.SetActive(cpu.ST > 0)
			}
		}
	})

	if err := display.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "display error: %v\n", err)
		os.Exit(1)
	}
}
