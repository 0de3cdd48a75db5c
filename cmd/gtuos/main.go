// main.go - gtuos: load a raw 8080 binary and run it under GTUOS

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gtuos/emu8080/internal/gtu8080"
	"github.com/gtuos/emu8080/internal/gtuos"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: gtuos <exeFile> <debugOption>")
		os.Exit(1)
	}

	image, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "gtuos: %v\n", err)
		os.Exit(1)
	}
	if len(image) > gtu8080.GuestAddressSpace {
		fmt.Fprintf(os.Stderr, "gtuos: %s is %d bytes, exceeds the 64K guest address space\n", os.Args[1], len(image))
		os.Exit(1)
	}

	debug, err := strconv.ParseBool(os.Args[2])
	if err != nil {
		debug = os.Args[2] != "0"
	}

	var opts []gtu8080.Option
	if debug {
		opts = append(opts, gtu8080.WithProfiler())
	}
	m := gtu8080.NewMachine(opts...)
	m.Memory.CopyFromAt(0, image)

	console, err := gtuos.NewTerminalConsole()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gtuos: %v\n", err)
		os.Exit(1)
	}
	// os.Exit skips deferred calls, so every exit below restores the
	// terminal explicitly.
	exit := func(code int) {
		console.Close()
		os.Exit(code)
	}

	supervisor := gtuos.New(console)

	var sink gtu8080.DebugSink
	var tracer *gtu8080.Tracer
	if debug {
		tracer = gtu8080.NewTracer(4096)
		sink = tracer
	}

	for {
		if m.CPU.Halted && !m.CPU.IE && !m.Interrupts.Pending() {
			break
		}
		if _, err := m.Step(debug, sink); err != nil {
			fmt.Fprintf(os.Stderr, "gtuos: %v\n", err)
			exit(1)
		}
		if m.CPU.SyscallPending() {
			if err := supervisor.HandleCall(m.CPU, m.Banks); err != nil {
				fmt.Fprintf(os.Stderr, "gtuos: %v\n", err)
				exit(1)
			}
			if exited, code := supervisor.Exited(); exited {
				if debug {
					tracer.DumpHuman(os.Stderr)
					m.Profiler.Report(os.Stderr)
				}
				exit(int(code))
			}
		}
	}

	if debug {
		tracer.DumpHuman(os.Stderr)
		m.Profiler.Report(os.Stderr)
	}
	exit(0)
}
