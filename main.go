// Package main is the entry point for the hanoi command.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/zorak1103/hanoi/cmd"
)

func main() {
	// Exit code semantics: 0 = success, 1 = invalid input, failed command or panic
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n❌ PANIC: %v\n", r)
			fmt.Fprintf(os.Stderr, "\nStack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	cmd.Execute()
}
