package cpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCpu(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	assert.False(cpu.Verbose)
	assert.Equal(0, cpu.Ip)
	assert.Equal(Registers{}, cpu.Register)

	cpu.Register = Registers{1, 2, 3, 4}
	cpu.Ip = 7
	cpu.Ticks = 9
	cpu.Reset()
	assert.Equal(0, cpu.Ip)
	assert.Equal(0, cpu.Ticks)
	assert.Equal(Registers{}, cpu.Register)
}

func TestCpuExecute(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		before  Registers
		op      Instruction
		after   Registers
		control Control
	}){
		{"cpy_imm", Registers{}, Copy{Imm(5), REG_A}, Registers{5, 0, 0, 0}, ADVANCE},
		{"cpy_neg", Registers{}, Copy{Imm(-5), REG_D}, Registers{0, 0, 0, -5}, ADVANCE},
		{"cpy_reg", Registers{0, 9, 0, 0}, Copy{Reg(REG_B), REG_C}, Registers{0, 9, 9, 0}, ADVANCE},
		{"cpy_self", Registers{3, 0, 0, 0}, Copy{Reg(REG_A), REG_A}, Registers{3, 0, 0, 0}, ADVANCE},
		{"inc", Registers{1, 2, 3, 4}, Increment{REG_C}, Registers{1, 2, 4, 4}, ADVANCE},
		{"dec", Registers{1, 2, 3, 4}, Decrement{REG_B}, Registers{1, 1, 3, 4}, ADVANCE},
		{"dec_neg", Registers{}, Decrement{REG_A}, Registers{-1, 0, 0, 0}, ADVANCE},
		{"inc_wrap", Registers{math.MaxInt32, 0, 0, 0}, Increment{REG_A}, Registers{math.MinInt32, 0, 0, 0}, ADVANCE},
		{"dec_wrap", Registers{0, math.MinInt32, 0, 0}, Decrement{REG_B}, Registers{0, math.MaxInt32, 0, 0}, ADVANCE},
		{"jnz_zero", Registers{}, JumpNotZero{Reg(REG_A), Imm(5)}, Registers{}, ADVANCE},
		{"jnz_imm_zero", Registers{}, JumpNotZero{Imm(0), Imm(5)}, Registers{}, ADVANCE},
		{"jnz_fwd", Registers{1, 0, 0, 0}, JumpNotZero{Reg(REG_A), Imm(2)}, Registers{1, 0, 0, 0}, JumpTo(12)},
		{"jnz_back", Registers{}, JumpNotZero{Imm(1), Imm(-3)}, Registers{}, JumpTo(7)},
		{"jnz_self", Registers{}, JumpNotZero{Imm(-1), Imm(0)}, Registers{}, JumpTo(10)},
		{"jnz_reg", Registers{0, 0, 1, -10}, JumpNotZero{Reg(REG_C), Reg(REG_D)}, Registers{0, 0, 1, -10}, JumpTo(0)},
		{"jnz_under", Registers{}, JumpNotZero{Imm(1), Imm(-11)}, Registers{}, JumpTo(-1)},
	}

	for _, entry := range table {
		cpu := NewCpu()
		cpu.Register = entry.before

		ctl := cpu.Execute(10, entry.op)
		assert.Equal(entry.after, cpu.Register, entry.name)
		assert.Equal(entry.control, ctl, entry.name)
	}
}

func TestCpuTick(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Ip: 0, Instruction: Copy{Imm(2), REG_A}},
			{LineNo: 2, Ip: 1, Instruction: JumpNotZero{Reg(REG_A), Imm(2)}},
			{LineNo: 3, Ip: 2, Instruction: Increment{REG_B}},
			{LineNo: 4, Ip: 3, Instruction: Decrement{REG_A}},
		},
	}

	cpu := NewCpu()

	trace := []int{}
	for done := cpu.Tick(prog); !done; done = cpu.Tick(prog) {
		trace = append(trace, cpu.Ip)
	}

	assert.Equal([]int{1, 3, 4}, trace)
	assert.Equal(Registers{1, 0, 0, 0}, cpu.Register)
	assert.Equal(3, cpu.Ticks)

	// Already done; nothing more executes.
	assert.True(cpu.Tick(prog))
	assert.Equal(3, cpu.Ticks)
}

func TestCpuTickBackwardsOut(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Ip: 0, Instruction: Increment{REG_A}},
			{LineNo: 2, Ip: 1, Instruction: JumpNotZero{Imm(1), Imm(-2)}},
		},
	}

	cpu := NewCpu()
	assert.False(cpu.Tick(prog))
	assert.False(cpu.Tick(prog))
	assert.Equal(-1, cpu.Ip)
	assert.True(cpu.Tick(prog))
	assert.Equal(Registers{1, 0, 0, 0}, cpu.Register)
}

func TestCpuString(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Ip = 3
	cpu.Register = Registers{1, -2, 0, 40}

	assert.Equal("   ip: 3\n    a: 1\n    b: -2\n    c: 0\n    d: 40\n", cpu.String())
}
