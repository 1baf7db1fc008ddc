package cpu

import (
	"fmt"
	"log"
)

// Cpu is the register file and instruction pointer of the machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Ip       int       // Current instruction pointer.
	Register Registers // Register bank.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a new CPU with a zeroed register file.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("% 5s: %v\n", "ip", cpu.Ip)
	for reg, val := range cpu.Register {
		text += fmt.Sprintf("% 5s: %v\n", Register(reg), val)
	}

	return
}

// Reset zeroes the registers, the instruction pointer and the tick counter.
func (cpu *Cpu) Reset() {
	cpu.Ip = 0
	cpu.Register = Registers{}
	cpu.Ticks = 0
}

// Execute applies one instruction to the register file. The instruction
// was fetched from ip; the returned Control tells where to continue.
func (cpu *Cpu) Execute(ip int, op Instruction) (ctl Control) {
	regs := &cpu.Register

	switch op := op.(type) {
	case Copy:
		regs[op.Destination] = op.Source.Resolve(regs)
	case Increment:
		regs[op.Target]++
	case Decrement:
		regs[op.Target]--
	case JumpNotZero:
		if op.Condition.Resolve(regs) != 0 {
			ctl = JumpTo(ip + int(op.Offset.Resolve(regs)))
		}
	default:
		log.Panicf("cpu: unhandled instruction %T", op)
	}

	return
}

// Tick fetches and executes the instruction at Ip. done is set, and nothing
// is executed, when Ip does not address an instruction of prog.
func (cpu *Cpu) Tick(prog *Program) (done bool) {
	op, ok := prog.Fetch(cpu.Ip)
	if !ok {
		done = true
		return
	}

	ip := cpu.Ip
	ctl := cpu.Execute(ip, op)
	cpu.Ip = ctl.Next(ip)
	cpu.Ticks++

	if cpu.Verbose {
		log.Printf("%04d: %-12v -> %04d %v", ip, op, cpu.Ip, cpu.Register)
	}

	return
}
