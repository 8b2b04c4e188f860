// Package repl is an interactive console over the constraint solver: it
// lets a user pick one of a small set of named example expressions, run
// inference on it, and inspect the resulting solution or failure, with
// colored output and readline-style history the way a REPL built on this
// stack normally does.
//
// There is no expression parser here -- the surface syntax is a
// collaborator's job -- so "running an expression" means selecting one of
// the console's built-in fixtures rather than typing source text.
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/sonsongithub/SwiftTypeInferenceHandsOn/internal/ast"
	"github.com/sonsongithub/SwiftTypeInferenceHandsOn/internal/errors"
	"github.com/sonsongithub/SwiftTypeInferenceHandsOn/internal/infer"
	"github.com/sonsongithub/SwiftTypeInferenceHandsOn/internal/scope"
	"github.com/sonsongithub/SwiftTypeInferenceHandsOn/internal/typedast"
	"github.com/sonsongithub/SwiftTypeInferenceHandsOn/internal/types"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
)

// Example is one named, pre-built expression the console can run.
type Example struct {
	Name string
	Doc  string
	Expr ast.Expr
}

// Console is the REPL's mutable state: its example catalog and the history
// of commands the user has issued, kept separately from liner's own history
// file so a headless caller can inspect it too.
type Console struct {
	examples    []Example
	history     []string
	historyFile string
}

// defaultHistoryFile is where history persists when the caller hasn't
// configured a different path (see NewWithHistoryFile).
func defaultHistoryFile() string {
	return filepath.Join(os.TempDir(), ".swift_infer_history")
}

// New returns a Console pre-loaded with the standard example catalog,
// persisting readline history at the default location.
func New() *Console {
	return &Console{examples: StandardExamples(), historyFile: defaultHistoryFile()}
}

// NewWithHistoryFile is like New, but persists readline history at path
// instead of the default location -- e.g. config.Config.HistoryFile.
func NewWithHistoryFile(path string) *Console {
	if path == "" {
		path = defaultHistoryFile()
	}
	return &Console{examples: StandardExamples(), historyFile: path}
}

// prompt is static: there's no capability set to report, unlike a REPL
// that's actually evaluating effectful code.
const prompt = "infer> "

// Start runs the console's read-eval-print loop against in/out.
func (c *Console) Start(in io.Reader, out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()

	historyFile := c.historyFile
	if historyFile == "" {
		historyFile = defaultHistoryFile()
	}
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	fmt.Fprintf(out, "%s\n", bold("Swift-style type inference console"))
	fmt.Fprintln(out, dim("Type :help for commands, :quit to exit"))
	fmt.Fprintln(out)

	line.SetCompleter(func(l string) (c []string) {
		if strings.HasPrefix(l, ":") {
			for _, cmd := range []string{":help", ":list", ":run", ":history", ":quit"} {
				if strings.HasPrefix(cmd, l) {
					c = append(c, cmd)
				}
			}
		}
		return
	})

	for {
		input, err := line.Prompt(prompt)
		if err == io.EOF {
			fmt.Fprintln(out, green("\nGoodbye!"))
			break
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("Error"), err)
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		line.AppendHistory(input)
		c.history = append(c.history, input)

		if input == ":quit" || input == ":q" || input == ":exit" {
			fmt.Fprintln(out, green("Goodbye!"))
			break
		}

		c.Handle(input, out)
	}

	if f, err := os.Create(historyFile); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}

// Handle dispatches a single command line. It's split out from Start so
// tests can drive the console without a terminal.
func (c *Console) Handle(input string, out io.Writer) {
	switch {
	case input == ":help":
		c.printHelp(out)
	case input == ":list":
		c.printList(out)
	case input == ":history":
		c.printHistory(out)
	case strings.HasPrefix(input, ":run "):
		name := strings.TrimSpace(strings.TrimPrefix(input, ":run "))
		c.runExample(name, out)
	default:
		fmt.Fprintf(out, "%s: unknown command %q (try :help)\n", yellow("Warning"), input)
	}
}

func (c *Console) printHelp(out io.Writer) {
	fmt.Fprintln(out, bold("Commands:"))
	fmt.Fprintln(out, "  :list          list available example expressions")
	fmt.Fprintln(out, "  :run <name>    run inference on an example and print its solution")
	fmt.Fprintln(out, "  :history       show commands issued this session")
	fmt.Fprintln(out, "  :quit          exit")
}

func (c *Console) printList(out io.Writer) {
	sorted := make([]Example, len(c.examples))
	copy(sorted, c.examples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	for _, e := range sorted {
		fmt.Fprintf(out, "  %s %s %s\n", cyan(e.Name), dim("--"), e.Doc)
	}
}

func (c *Console) printHistory(out io.Writer) {
	for i, h := range c.history {
		fmt.Fprintf(out, "%4d  %s\n", i+1, h)
	}
}

func (c *Console) findExample(name string) (Example, bool) {
	for _, e := range c.examples {
		if e.Name == name {
			return e, true
		}
	}
	return Example{}, false
}

func (c *Console) runExample(name string, out io.Writer) {
	ex, ok := c.findExample(name)
	if !ok {
		fmt.Fprintf(out, "%s: no such example %q (see :list)\n", red("Error"), name)
		return
	}

	// RunInference already turns a *types.ProgrammerError panic into a
	// returned error; this recover is the console's own outer boundary
	// against anything else going wrong mid-solve, so a bug in one example
	// can't take the whole session down.
	defer func() {
		if r := recover(); r != nil {
			data := errors.SafeEncodeError(fmt.Errorf("%v", r), "solver")
			fmt.Fprintf(out, "%s: %s\n", red("Type error"), string(data))
		}
	}()

	g := infer.NewGenerator()
	result, err := RunInference(g, ex.Expr)
	if err != nil {
		report, ok := errors.AsReport(err)
		if !ok {
			report = errors.NewTypecheck(errors.TC005, err.Error(), nil)
		}
		data, _ := report.ToJSON(true)
		fmt.Fprintf(out, "%s: %s\n", red("Type error"), string(data))
		return
	}

	fmt.Fprintf(out, "%s %s\n", green("Solved:"), result.String())
}

// RunInference performs the full submit-then-normalize-then-project
// pipeline for a single top-level expression. A solver contract violation
// (a *types.ProgrammerError panic) is recovered at this boundary and
// reported the same structured way a Failure result would be, so a caller
// never sees a raw panic cross this package's edge; the returned error
// unwraps to an errors.Encoded report via errors.AsReport.
func RunInference(g *infer.Generator, expr ast.Expr) (node typedast.TypedNode, err error) {
	defer errors.RecoverContractViolation(&err, errors.PRG001)

	if _, inferErr := g.Infer(scope.NewScope(), expr); inferErr != nil {
		if uf, ok := inferErr.(*types.UnificationFailure); ok {
			return nil, errors.WrapReport(errors.FromUnificationFailure(uf))
		}
		return nil, errors.WrapReport(errors.NewTypecheck(errors.TC002, inferErr.Error(), nil))
	}

	if entry, failed := g.CS.FailedConstraint(); failed {
		msg := fmt.Sprintf("constraint %s could not be solved", entry.Constraint)
		return nil, errors.WrapReport(errors.NewTypecheck(errors.TC003, msg, nil))
	}

	g.CS.Normalize()
	sol := g.CS.CurrentSolution()
	return typedast.Project(sol, expr), nil
}
