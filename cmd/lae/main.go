// Command lae evaluates a linear-algebra expression tree read from a
// JSON file and writes the resulting matrix to another.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/lae-eval/lae/engine"
	"github.com/lae-eval/lae/internal/obslog"
	"github.com/lae-eval/lae/treeio"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	in := flag.String("in", "", "path to the input expression tree JSON file")
	out := flag.String("out", "out.json", "path to write the resulting matrix JSON to")
	workers := flag.Int("workers", 10, "number of executor workers")
	verbose := flag.Bool("verbose", false, "log worker report after evaluation")
	flag.Parse()

	if *in == "" {
		return fmt.Errorf("lae: -in is required")
	}

	logger := obslog.Default()
	if !*verbose {
		logger = obslog.Noop()
	}

	root, err := treeio.ParseFile(*in)
	if err != nil {
		return err
	}

	eng, err := engine.New(*workers, engine.WithLogger(logger))
	if err != nil {
		return err
	}

	resolved, err := eng.Run(context.Background(), root)
	if err != nil {
		return err
	}

	if *verbose {
		logger.Info("evaluation complete", slog.String("out", *out))
		fmt.Fprint(os.Stderr, eng.WorkerReport())
	}

	result, ok := resolved.GetMatrix()
	if !ok {
		return fmt.Errorf("lae: root did not resolve")
	}

	return treeio.WriteFile(*out, result)
}
