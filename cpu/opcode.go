package cpu

import (
	"fmt"
	"strconv"
	"strings"
)

// Register is a register file index.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_A = Register(0) // a
	REG_B = Register(1) // b
	REG_C = Register(2) // c
	REG_D = Register(3) // d
)

// REGISTER_COUNT is the size of the register file.
const REGISTER_COUNT = 4

// registerNames is the register alphabet; a name's position is its index.
const registerNames = "abcd"

// ParseRegister returns the register named by word.
func ParseRegister(word string) (reg Register, ok bool) {
	if len(word) != 1 {
		return
	}

	n := strings.IndexByte(registerNames, word[0])
	if n < 0 {
		return
	}

	reg = Register(n)
	ok = true
	return
}

// Registers is the register file.
type Registers [REGISTER_COUNT]int32

// String formats the register file as a bracketed list, ie "[1, 0, 0, 0]".
func (regs Registers) String() string {
	words := make([]string, len(regs))
	for n, value := range regs {
		words[n] = strconv.FormatInt(int64(value), 10)
	}
	return "[" + strings.Join(words, ", ") + "]"
}

// Argument is an operand that is either an immediate or a register reference.
type Argument struct {
	Immediate bool     // Set if Value is used, otherwise Register.
	Value     int32    // Immediate value.
	Register  Register // Referenced register.
}

// Imm returns an immediate argument.
func Imm(value int32) Argument {
	return Argument{Immediate: true, Value: value}
}

// Reg returns a register reference argument.
func Reg(reg Register) Argument {
	return Argument{Register: reg}
}

// Resolve returns the argument's value against a register file.
func (arg Argument) Resolve(regs *Registers) int32 {
	if arg.Immediate {
		return arg.Value
	}
	return regs[arg.Register]
}

func (arg Argument) String() string {
	if arg.Immediate {
		return strconv.FormatInt(int64(arg.Value), 10)
	}
	return arg.Register.String()
}

// Mnemonic is an instruction kind.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	OP_CPY = Mnemonic(0) // cpy
	OP_INC = Mnemonic(1) // inc
	OP_DEC = Mnemonic(2) // dec
	OP_JNZ = Mnemonic(3) // jnz
)

// mnemonicMap maps source words to instruction kinds.
var mnemonicMap = map[string]Mnemonic{
	"cpy": OP_CPY,
	"inc": OP_INC,
	"dec": OP_DEC,
	"jnz": OP_JNZ,
}

// Instruction is one of Copy, Increment, Decrement or JumpNotZero.
type Instruction interface {
	fmt.Stringer
	Mnemonic() Mnemonic
	isInstruction()
}

// Copy writes Source into Destination.
type Copy struct {
	Source      Argument
	Destination Register
}

// Increment adds one to Target.
type Increment struct {
	Target Register
}

// Decrement subtracts one from Target.
type Decrement struct {
	Target Register
}

// JumpNotZero moves the instruction pointer by Offset, relative to
// itself, when Condition is nonzero.
type JumpNotZero struct {
	Condition Argument
	Offset    Argument
}

func (Copy) isInstruction() {}
func (Increment) isInstruction() {}
func (Decrement) isInstruction() {}
func (JumpNotZero) isInstruction() {}

func (Copy) Mnemonic() Mnemonic { return OP_CPY }
func (Increment) Mnemonic() Mnemonic { return OP_INC }
func (Decrement) Mnemonic() Mnemonic { return OP_DEC }
func (JumpNotZero) Mnemonic() Mnemonic { return OP_JNZ }

func (op Copy) String() string {
	return fmt.Sprintf("%v %v %v", OP_CPY, op.Source, op.Destination)
}

func (op Increment) String() string {
	return fmt.Sprintf("%v %v", OP_INC, op.Target)
}

func (op Decrement) String() string {
	return fmt.Sprintf("%v %v", OP_DEC, op.Target)
}

func (op JumpNotZero) String() string {
	return fmt.Sprintf("%v %v %v", OP_JNZ, op.Condition, op.Offset)
}

// Control is the instruction pointer update requested by an instruction.
type Control struct {
	Jump   bool // Set if Target replaces the default advance.
	Target int  // Absolute address to continue from.
}

// ADVANCE continues with the next instruction.
var ADVANCE = Control{}

// JumpTo continues at an absolute address.
func JumpTo(ip int) Control {
	return Control{Jump: true, Target: ip}
}

// Next returns the address following an instruction at ip.
func (ctl Control) Next(ip int) int {
	if ctl.Jump {
		return ctl.Target
	}
	return ip + 1
}
