// File: cmd/loxlet/main.go

// Command loxlet is the host CLI: zero arguments start the REPL, one
// argument runs a script file, and more than one argument is a usage
// error, dispatched through cobra rather than a hand-rolled os.Args
// switch.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akashmaji946/loxlet/interp"
	"github.com/akashmaji946/loxlet/repl"
	"github.com/akashmaji946/loxlet/watch"
)

const (
	version = "v1.0.0"
	author  = "loxlet"
	line    = "----------------------------------------------------------------"
	prompt  = "loxlet >>> "
	banner  = `
 _             _      _
| | _____  __ | | ___| |_
| |/ _ \ \/ / | |/ _ \ __|
| | (_) >  <  | |  __/ |_
|_|\___/_/\_\ |_|\___|\__|
`
)

func main() {
	var watchFlag bool
	var noColor bool

	root := &cobra.Command{
		Use:           "loxlet [script]",
		Short:         "loxlet is a tree-walking interpreter for Lox",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}
			if len(args) == 0 {
				runREPL()
				return nil
			}
			return runFile(args[0], watchFlag)
		},
	}
	root.Flags().BoolVar(&watchFlag, "watch", false, "re-run the script whenever it changes")
	root.Flags().BoolVar(&noColor, "no-color", false, "disable colored diagnostics")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(interp.ExitCompileError)
	}
}

func runREPL() {
	r := repl.New(banner, version, author, line, prompt)
	r.Start(os.Stdout)
}

func runFile(path string, watchMode bool) error {
	if watchMode {
		stop, err := watch.Watch(path, func() { runOnce(path) })
		if err != nil {
			return err
		}
		defer stop()
		select {}
	}

	code := runOnce(path)
	if code != interp.ExitOK {
		os.Exit(code)
	}
	return nil
}

func runOnce(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loxlet: could not read %q: %v\n", path, err)
		return interp.ExitCompileError
	}
	in := interp.New(os.Stdout)
	return in.Run(string(source), os.Stderr)
}
