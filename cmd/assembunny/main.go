// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/assembunny/cpu"
	"github.com/ezrec/assembunny/emulator"
)

func main() {
	var compile string
	var expressions bool
	var verbose bool

	emu := emulator.NewEmulator()

	flag.StringVar(&compile, "c", "./inputs/input.txt", "assembunny file to run, - for stdin")
	flag.Func("r", "Preset a register before execution, ie c=1 (repeatable)", emu.PresetString)
	flag.BoolVar(&expressions, "x", false, "Evaluate $(...) expressions in arguments")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	var inf io.Reader = os.Stdin
	if compile != "-" {
		file, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer file.Close()
		inf = file
	}

	asm := &cpu.Assembler{Verbose: verbose, Expressions: expressions}
	prog, err := asm.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	emu.Program = prog
	emu.Verbose = verbose

	fmt.Println(emu.Run())
}
