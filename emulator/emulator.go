// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log"
	"strconv"
	"strings"

	"github.com/ezrec/assembunny/cpu"
)

// Emulator state. CPU + program listing.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	presets map[cpu.Register]int32
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	return
}

// Preset sets the value a register holds after every Reset.
func (emu *Emulator) Preset(reg cpu.Register, value int32) {
	if emu.presets == nil {
		emu.presets = map[cpu.Register]int32{reg: value}
	} else {
		emu.presets[reg] = value
	}
}

// PresetString applies a REG=VALUE preset, ie "c=1".
func (emu *Emulator) PresetString(preset string) (err error) {
	defer func() {
		if err != nil {
			err = &ErrPreset{Preset: preset, Err: err}
		}
	}()

	name, text, ok := strings.Cut(preset, "=")
	if !ok {
		err = ErrPresetSyntax
		return
	}

	reg, ok := cpu.ParseRegister(strings.TrimSpace(name))
	if !ok {
		err = ErrPresetRegister
		return
	}

	value, err := strconv.ParseInt(strings.TrimSpace(text), 10, 32)
	if err != nil {
		err = ErrPresetValue
		return
	}

	emu.Preset(reg, int32(value))
	return
}

// Reset zeroes the CPU, then applies the register presets.
func (emu *Emulator) Reset() {
	emu.Cpu.Reset()

	for reg, value := range emu.presets {
		emu.Cpu.Register[reg] = value
	}

	emu.Cpu.Verbose = emu.Verbose
}

// Ticks returns the total instructions executed since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Ip returns current instruction pointer.
func (emu *Emulator) Ip() int {
	return emu.Cpu.Ip
}

// Code returns the current instruction, or nil when the program is done.
func (emu *Emulator) Code() cpu.Instruction {
	op, _ := emu.Program.Fetch(emu.Cpu.Ip)
	return op
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	op := emu.Program.Debug(emu.Cpu.Ip)
	if op == nil {
		return 0
	}

	return op.LineNo
}

// Tick performs a single instruction of the emulator. done is set once
// the instruction pointer has left the program.
func (emu *Emulator) Tick() (done bool) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	if emu.Verbose {
		lineno := emu.LineNo()
		if lineno != 0 {
			log.Printf("line %d: %v", lineno, emu.Code())
		}
	}

	return emu.Cpu.Tick(emu.Program)
}

// Run resets the emulator and ticks until the program is done, returning
// the final register file. A program that never leaves its own
// instructions never returns.
func (emu *Emulator) Run() cpu.Registers {
	emu.Reset()

	for done := emu.Tick(); !done; done = emu.Tick() {
	}

	if emu.Verbose {
		log.Printf("done after %d ticks", emu.Ticks())
	}

	return emu.Cpu.Register
}
