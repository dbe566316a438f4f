// File: repl/repl.go

// Package repl implements the Read-Eval-Print Loop for the interpreter.
// It is an interactive host collaborator, not part of the core
// language: each line is fed to an interp.Interpreter, diagnostics are
// reported in place, and the session continues regardless of the
// result.
package repl

import (
	"io"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/loxlet/interp"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl bundles the cosmetic configuration of an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	Prompt  string
}

// New builds a Repl with the given display configuration.
func New(banner, version, author, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintln(writer, "Type Lox code and press enter.")
	cyanColor.Fprintln(writer, "Type '.exit' to quit, '/scope' to list bound names.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop, reading from stdin via readline and writing
// output and diagnostics to writer, until '.exit' or EOF.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	in := interp.New(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}
		if line == "/scope" {
			r.printScope(writer, in)
			continue
		}

		rl.SaveHistory(line)
		in.Run(line, writer)
		in.ResetLine()
	}
}

func (r *Repl) printScope(writer io.Writer, in *interp.Interpreter) {
	names := in.Globals()
	sort.Strings(names)
	if len(names) == 0 {
		cyanColor.Fprintln(writer, "(no bindings)")
		return
	}
	cyanColor.Fprintln(writer, strings.Join(names, ", "))
}
