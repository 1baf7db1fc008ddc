// Package cpu implements the register machine and assembler for assembunny.
//
// The machine has an instruction pointer and four signed 32-bit registers
// (a-d). Its instruction set is cpy, inc, dec and jnz; jnz jumps relative
// to its own address.
//
// The assembler reads one instruction per line. An operand is a register
// name or a signed decimal integer, optionally a $(...) assembly time
// expression.
package cpu
