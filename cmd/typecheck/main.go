// Command typecheck is a small demonstration driver for the constraint
// solver: it builds a handful of hand-constructed ASTs (there is no parser
// in this module -- see internal/ast's package doc), runs inference on
// each, and prints the result. Passing -repl instead drops into the
// interactive console in internal/repl.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/sonsongithub/SwiftTypeInferenceHandsOn/internal/config"
	"github.com/sonsongithub/SwiftTypeInferenceHandsOn/internal/errors"
	"github.com/sonsongithub/SwiftTypeInferenceHandsOn/internal/infer"
	"github.com/sonsongithub/SwiftTypeInferenceHandsOn/internal/repl"
)

func main() {
	useREPL := flag.Bool("repl", false, "start the interactive constraint console")
	configPath := flag.String("config", "", "path to a YAML config file (see internal/config)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	color.NoColor = !cfg.Color

	if *useREPL {
		repl.NewWithHistoryFile(cfg.HistoryFile).Start(os.Stdin, os.Stdout)
		return
	}

	bold := color.New(color.Bold).SprintFunc()
	fmt.Println(bold("Type Inference Demo"))
	fmt.Println(bold("===================="))
	fmt.Println()

	for _, ex := range repl.StandardExamples() {
		if !cfg.Includes(ex.Name) {
			continue
		}
		runAndReport(ex)
	}
}

func runAndReport(ex repl.Example) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	fmt.Printf("%s: %s\n", ex.Name, dim(ex.Doc))

	g := infer.NewGenerator()
	typed, err := repl.RunInference(g, ex.Expr)
	if err != nil {
		report, ok := errors.AsReport(err)
		if !ok {
			report = errors.NewTypecheck(errors.TC005, err.Error(), nil)
		}
		data, _ := report.ToJSON(true)
		fmt.Printf("  %s %s\n", red("FAILED"), string(data))
		fmt.Println()
		return
	}

	fmt.Printf("  %s %s\n", green("OK"), typed.String())
	fmt.Println()
}
