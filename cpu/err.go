package cpu

import (
	"errors"

	"github.com/ezrec/assembunny/translate"
)

var f = translate.From

var (
	// Assembler error kinds
	ErrMnemonicUnknown = errors.New(f("unknown instruction"))
	ErrOperandMissing  = errors.New(f("operand missing"))
	ErrArgumentInvalid = errors.New(f("argument invalid"))
	ErrTargetInvalid   = errors.New(f("target is not a register"))
)

// ErrMnemonic is an unrecognized instruction word.
type ErrMnemonic string

func (err ErrMnemonic) Error() string {
	return f("unknown instruction '%v'", string(err))
}

func (err ErrMnemonic) Is(target error) bool {
	return target == ErrMnemonicUnknown
}

// ErrOperand is a missing instruction operand.
type ErrOperand struct {
	Mnemonic Mnemonic
	Operand  string
}

func (err ErrOperand) Error() string {
	return f("%v requires %v", err.Mnemonic, err.Operand)
}

func (err ErrOperand) Is(target error) bool {
	return target == ErrOperandMissing
}

// ErrParseValue is a word that is neither a register nor a number.
type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a valid input value", string(err))
}

func (err ErrParseValue) Is(target error) bool {
	return target == ErrArgumentInvalid
}

// ErrParseExpression is a $(...) expression that is not a 32-bit integer.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

func (err ErrParseExpression) Is(target error) bool {
	return target == ErrArgumentInvalid
}

// ErrTarget is an immediate supplied where a register is required.
type ErrTarget struct {
	Mnemonic Mnemonic
	Word     string
}

func (err ErrTarget) Error() string {
	return f("%v requires a register but was supplied '%v'", err.Mnemonic, err.Word)
}

func (err ErrTarget) Is(target error) bool {
	return target == ErrTargetInvalid
}

// ErrSyntax locates an assembler error in the source text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
