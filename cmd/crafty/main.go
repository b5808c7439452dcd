package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crafty-lang/crafty"
)

var errTooManyArgs = errors.New("too many arguments")

func main() {
	var debugFlag bool
	var configPath string
	var printAST bool

	root := &cobra.Command{
		Use:           "crafty [script]",
		Short:         "Run crafty scripts or start an interactive REPL",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				fmt.Println("Usage: crafty [script]")
				return errTooManyArgs
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if cmd.Flags().Changed("debug") {
				cfg.Debug = debugFlag
			}

			log, err := crafty.NewLogger(cfg.Debug)
			if err != nil {
				return fmt.Errorf("building logger: %w", err)
			}
			defer log.Sync()

			if len(args) == 1 {
				return runFile(args[0], log, cfg.FloatFormat, printAST)
			}
			return runREPL(log, cfg.FloatFormat, printAST)
		},
	}

	root.Flags().BoolVar(&debugFlag, "debug", false, "enable debug tracing (or set CRAFTY_DEBUG)")
	root.Flags().StringVar(&configPath, "config", "", "path to a config file (default .crafty.yaml)")
	root.Flags().BoolVar(&printAST, "print-ast", false, "print each parsed statement's reconstructed source before running it")

	if err := root.Execute(); err != nil {
		if !errors.Is(err, errTooManyArgs) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func runFile(path string, log *zap.Logger, floatFormat string, printAST bool) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if printAST {
		if err := printProgramAST(string(source)); err != nil {
			return err
		}
	}
	in := crafty.NewInterpreter(os.Stdout, log)
	in.SetFloatFormat(floatFormat)
	if !in.Run(string(source)) {
		os.Exit(1)
	}
	return nil
}
