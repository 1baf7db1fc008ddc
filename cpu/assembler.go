// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"log"
	"math"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Assembler translates assembunny source text into a Program.
type Assembler struct {
	Verbose     bool     // If set, verbosely logs the assembler actions.
	Expressions bool     // If set, $(...) arguments are evaluated at assembly time.
	Opcode      []Opcode // List of generated opcodes.
}

// valueOf returns the value of a non-register word.
func (asm *Assembler) valueOf(word string) (value int32, err error) {
	if asm.Expressions && strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")") {
		value, err = asm.parenEval(word[2 : len(word)-1])
		return
	}

	v64, err := strconv.ParseInt(word, 10, 32)
	if err != nil {
		err = ErrParseValue(word)
		return
	}

	value = int32(v64)
	return
}

// parenEval does assembly time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int32, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, nil)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 > math.MaxInt32 || st_int64 < math.MinInt32 {
		err = ErrParseExpression(expr)
		return
	}
	value = int32(st_int64)
	return
}

// argument classifies a word as a register reference or an immediate.
func (asm *Assembler) argument(word string) (arg Argument, err error) {
	reg, ok := ParseRegister(word)
	if ok {
		arg = Reg(reg)
		return
	}

	value, err := asm.valueOf(word)
	if err != nil {
		return
	}

	arg = Imm(value)
	return
}

// target classifies a word that must name a register.
func (asm *Assembler) target(op Mnemonic, word string) (reg Register, err error) {
	arg, err := asm.argument(word)
	if err != nil {
		return
	}
	if arg.Immediate {
		err = ErrTarget{Mnemonic: op, Word: word}
		return
	}

	reg = arg.Register
	return
}

// splitLine trims a line and splits it into words.
func splitLine(line string) []string {
	words := strings.Split(strings.TrimSpace(line), " ")
	return slices.DeleteFunc(words, func(a string) bool { return len(a) == 0 })
}

// operandNames names each operand of an instruction, in order.
var operandNames = map[Mnemonic][]string{
	OP_CPY: {f("a source to copy"), f("a destination register")},
	OP_INC: {f("a register to increment")},
	OP_DEC: {f("a register to decrement")},
	OP_JNZ: {f("a target to compare"), f("a jump distance")},
}

// parseWords evaluates the words of a single line of source text.
// Words past an instruction's operands are ignored.
func (asm *Assembler) parseWords(words []string) (op Instruction, err error) {
	if len(words) == 0 {
		err = ErrMnemonic("")
		return
	}

	mnemonic, ok := mnemonicMap[words[0]]
	if !ok {
		err = ErrMnemonic(words[0])
		return
	}

	args := words[1:]
	for n, name := range operandNames[mnemonic] {
		if n >= len(args) {
			err = ErrOperand{Mnemonic: mnemonic, Operand: name}
			return
		}
	}

	switch mnemonic {
	case OP_CPY:
		var src Argument
		var dst Register
		src, err = asm.argument(args[0])
		if err != nil {
			return
		}
		dst, err = asm.target(mnemonic, args[1])
		if err != nil {
			return
		}
		op = Copy{Source: src, Destination: dst}
	case OP_INC:
		var reg Register
		reg, err = asm.target(mnemonic, args[0])
		if err != nil {
			return
		}
		op = Increment{Target: reg}
	case OP_DEC:
		var reg Register
		reg, err = asm.target(mnemonic, args[0])
		if err != nil {
			return
		}
		op = Decrement{Target: reg}
	case OP_JNZ:
		var cond, offset Argument
		cond, err = asm.argument(args[0])
		if err != nil {
			return
		}
		offset, err = asm.argument(args[1])
		if err != nil {
			return
		}
		op = JumpNotZero{Condition: cond, Offset: offset}
	}

	return
}

// ParseLine parses a single line of source text as an instruction.
func (asm *Assembler) ParseLine(line string) (op Instruction, err error) {
	return asm.parseWords(splitLine(line))
}

// Parse parses an input stream into a Program. Blank lines are skipped
// and do not occupy an instruction address.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Opcode = asm.Opcode[:0]

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = strings.TrimSpace(text)
		words := splitLine(line)
		if len(words) == 0 {
			continue
		}

		var op Instruction
		op, err = asm.parseWords(words)
		if err != nil {
			return
		}

		asm.Opcode = append(asm.Opcode, Opcode{
			LineNo:      lineno,
			Ip:          len(asm.Opcode),
			Words:       words,
			Instruction: op,
		})
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// ParseString parses source text into a Program.
func (asm *Assembler) ParseString(text string) (prog *Program, err error) {
	return asm.Parse(strings.NewReader(text))
}
