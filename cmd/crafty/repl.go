package main

import (
	"bufio"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/crafty-lang/crafty"
)

// runREPL reads one line at a time from stdin, running each against a
// single long-lived Interpreter so variables declared on one line are
// visible on the next. It exits cleanly on EOF (Ctrl-D).
func runREPL(log *zap.Logger, floatFormat string, printAST bool) error {
	in := crafty.NewInterpreter(os.Stdout, log)
	in.SetFloatFormat(floatFormat)
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		if printAST {
			if err := printProgramAST(line); err != nil {
				fmt.Fprintln(os.Stdout, err)
				continue
			}
		}
		in.Run(line)
	}

	return scanner.Err()
}
