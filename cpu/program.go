package cpu

import (
	"iter"
	"strings"
)

// Opcode is a parsed line of source with its instruction address.
type Opcode struct {
	LineNo      int
	Ip          int
	Words       []string
	Instruction Instruction
}

type Program struct {
	Opcodes []Opcode
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.Opcodes)
}

// Fetch returns the instruction at ip.
func (prog *Program) Fetch(ip int) (op Instruction, ok bool) {
	if ip < 0 || ip >= len(prog.Opcodes) {
		return
	}

	op = prog.Opcodes[ip].Instruction
	ok = true
	return
}

// Debug returns the source opcode for ip, or nil.
func (prog *Program) Debug(ip int) *Opcode {
	if ip < 0 || ip >= len(prog.Opcodes) {
		return nil
	}

	return &prog.Opcodes[ip]
}

func (prog *Program) Instructions() iter.Seq2[int, Instruction] {
	return func(yield func(ip int, op Instruction) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.Ip, op.Instruction) {
				return
			}
		}
	}
}

// String disassembles the program, one instruction per line.
func (prog *Program) String() string {
	var sb strings.Builder
	for _, op := range prog.Instructions() {
		sb.WriteString(op.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
