// Command nonogramctl is the CLI driver spec.md §6 defines the core
// engine's entry points against: `solve`/`generate` for single puzzles,
// and a no-argument batch mode over a configured input file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-logr/logr"

	"github.com/vlaran/nonogram/board"
	"github.com/vlaran/nonogram/engine"
	"github.com/vlaran/nonogram/parse"
	"github.com/vlaran/nonogram/status"
	"github.com/vlaran/nonogram/taaifmt"
)

var configPath = flag.String("config", "", "path to a YAML batch config file")

func main() {
	flag.Parse()
	args := flag.Args()

	sink := newStdLogSink(log.New(os.Stderr, "", log.LstdFlags))
	baseLog := logr.New(sink)

	var err error
	switch {
	case len(args) == 2 && args[0] == "solve":
		err = runSolve(args[1], baseLog)
	case len(args) == 2 && args[0] == "generate":
		err = runGenerate(args[1], baseLog)
	case len(args) == 0:
		err = runBatch(*configPath, baseLog)
	default:
		fmt.Fprintln(os.Stderr, "usage: nonogramctl solve <puzzle-file> | generate <puzzle-file> | [--config cfg.yaml]")
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "nonogramctl:", err)
		os.Exit(1)
	}
}

// readPuzzle opens path and parses one puzzle record of side n.
func readPuzzle(path string, n int) (*parse.Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parse.ParseOne(f, n)
}

// runSolve implements `solver SOLVE <puzzle-file>` (spec.md §6): print
// `<node_count>\t<elapsed>\n<board>` and exit nonzero unless SOLVED.
func runSolve(path string, baseLog logr.Logger) error {
	p, err := readPuzzle(path, board.MaxN)
	if err != nil {
		return err
	}

	eng := engine.New(engine.WithLogger(baseLog.WithName("solve")))
	clues, err := parse.BuildClues(p, eng.Zobrist())
	if err != nil {
		return err
	}

	start := time.Now()
	res := eng.SolveOne(p.N, clues)
	elapsed := time.Since(start)

	fmt.Printf("%d\t%s\n", res.NodeCount, elapsed)
	fmt.Print(taaifmt.Format(&res.Board))

	if res.Status != status.Solved {
		os.Exit(1)
	}
	return nil
}

// runGenerate implements `solver GENERATE <puzzle-file>` (spec.md §6):
// print node_count if unique, -1 if unsolvable, -2 if multiple solutions.
func runGenerate(path string, baseLog logr.Logger) error {
	p, err := readPuzzle(path, board.MaxN)
	if err != nil {
		return err
	}

	eng := engine.New(engine.WithLogger(baseLog.WithName("generate")))
	clues, err := parse.BuildClues(p, eng.Zobrist())
	if err != nil {
		return err
	}

	res := eng.SolveUnique(p.N, clues)
	switch res.Status {
	case status.Solved:
		fmt.Println(res.NodeCount)
	case status.ManySolution:
		fmt.Println(-2)
	default:
		fmt.Println(-1)
	}
	return nil
}
