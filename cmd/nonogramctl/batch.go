// File: batch.go
// Role: batch mode (spec.md §6 "No-argument invocation"), a round-robin
// scheduler grounded on original_source/search_scheduling.py's
// scheduled_solver: alternate a light and a heavy per-puzzle node budget
// across passes over the still-unsolved puzzles, checkpointing each
// puzzle's search state between passes via search.CheckpointStore.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-logr/logr"
	pkgerrors "github.com/pkg/errors"

	"github.com/vlaran/nonogram/board"
	"github.com/vlaran/nonogram/engine"
	"github.com/vlaran/nonogram/parse"
	"github.com/vlaran/nonogram/search"
	"github.com/vlaran/nonogram/status"
	"github.com/vlaran/nonogram/taaifmt"
)

// runBatch implements the batch driver: parse cfg.InputFile as a TAAI
// file of cfg.NumQuestions fixed-size records, then repeatedly sweep the
// still-unsolved puzzles with an alternating light/heavy node_limit
// (spec.md §6) until every puzzle is SOLVED or no puzzle makes progress
// in a full pass, writing solved boards to cfg.OutputFile and a per-pass
// summary to cfg.LogFile.
func runBatch(configPath string, baseLog logr.Logger) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	baseLog = baseLog.WithName("batch")

	in, err := os.Open(cfg.InputFile)
	if err != nil {
		return pkgerrors.Wrapf(err, "open %q", cfg.InputFile)
	}
	puzzles, err := parse.ParseTAAIFile(in, board.MaxN, cfg.NumQuestions)
	in.Close()
	if err != nil && len(puzzles) == 0 {
		return pkgerrors.Wrapf(err, "parse %q", cfg.InputFile)
	}

	out, err := os.Create(cfg.OutputFile)
	if err != nil {
		return pkgerrors.Wrapf(err, "create %q", cfg.OutputFile)
	}
	defer out.Close()

	logFile, err := os.Create(cfg.LogFile)
	if err != nil {
		return pkgerrors.Wrapf(err, "create %q", cfg.LogFile)
	}
	defer logFile.Close()

	checkpointDir := filepath.Join(filepath.Dir(cfg.OutputFile), ".nonogramctl-checkpoints")
	store, err := search.OpenCheckpointStore(checkpointDir)
	if err != nil {
		return err
	}
	defer store.Close()

	eng := engine.New(engine.WithLogger(baseLog))

	solved := make([]bool, len(puzzles))
	nodeLimit := cfg.LightNodeLimit
	begin := time.Now()
	remaining := len(puzzles)

	for remaining > 0 {
		progressed := 0
		attempted := 0

		for i, p := range puzzles {
			if solved[i] {
				continue
			}
			attempted++

			puzzleID := fmt.Sprintf("%d", i)
			clues, buildErr := parse.BuildClues(p, eng.Zobrist())
			if buildErr != nil {
				fmt.Fprintf(logFile, "#%d\tbuild error: %v\n", i+1, buildErr)
				continue
			}

			start := time.Now()
			st, b, nodes, runErr := runOneCheckpointed(eng, store, puzzleID, p.N, clues, nodeLimit)
			elapsed := time.Since(start)

			if runErr != nil {
				fmt.Fprintf(logFile, "#%d\t%s\terror: %v\n", i+1, elapsed, runErr)
				continue
			}

			fmt.Fprintf(logFile, "#%d\t%s\t%s\tnodes=%d\n", i+1, elapsed, st, nodes)

			if st == status.Solved {
				solved[i] = true
				remaining--
				progressed++
				fmt.Fprintf(out, "$ puzzle %d\n%s", i+1, taaifmt.Format(&b))
				_ = store.Delete(puzzleID)
			}

			if attempted >= cfg.ScheduleNumPerPass {
				break
			}
		}

		fmt.Fprintf(logFile, "////// solved: %d, remaining: %d, limited: %d //////\n",
			len(puzzles)-remaining, remaining, nodeLimit)

		if progressed == 0 && attempted == 0 {
			break
		}
		if nodeLimit == cfg.LightNodeLimit {
			nodeLimit = cfg.HeavyNodeLimit
		} else {
			nodeLimit = cfg.LightNodeLimit
		}
	}

	fmt.Fprintf(logFile, "total time usage = %s\n", time.Since(begin))
	return nil
}

// runOneCheckpointed resumes puzzleID's search from a stored checkpoint
// (if any), runs it to completion or Timeout under nodeLimit, and
// persists a fresh checkpoint on Timeout. On any other result it leaves a
// prior checkpoint in place; runBatch deletes it after a Solved result.
func runOneCheckpointed(eng *engine.Engine, store *search.CheckpointStore, puzzleID string, n int, clues []*board.LineClue, nodeLimit int) (status.Status, board.Board, int, error) {
	cp, found, err := store.Load(puzzleID)
	if err != nil {
		return status.Conflict, board.Board{}, 0, err
	}

	var r *search.Resumable
	if found {
		r = eng.ResumeFromCheckpoint(n, clues, cp, nodeLimit)
	} else {
		r, err = eng.NewResumable(n, clues, nodeLimit)
		if err != nil {
			return status.Conflict, board.Board{}, 0, err
		}
	}

	st := r.Run()
	if st == status.Timeout {
		if saveErr := store.Save(puzzleID, r.Checkpoint()); saveErr != nil {
			return st, r.Board, r.NodeCount, saveErr
		}
	}
	return st, r.Board, r.NodeCount, nil
}
