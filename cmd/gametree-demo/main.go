// Command gametree-demo drives a self-play game of tic-tac-toe through
// the gametree search driver and prints each position, the same way the
// teacher engine's UCI command drove a game loop from the terminal.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hailam/gametree"
	"github.com/hailam/gametree/internal/tictactoe"
)

func main() {
	depth := flag.Int("depth", 9, "maximum search depth in plies")
	ttSize := flag.Int("tt-size", 4096, "transposition table entry count")
	maxAge := flag.Int("tt-max-age", 16, "transposition table entry eviction age")
	trace := flag.Bool("trace", false, "emit one debug log line per node visited")
	verbose := flag.Bool("v", false, "enable info-level logging")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
	if *verbose {
		logger = logger.Level(zerolog.InfoLevel)
	} else {
		logger = logger.Level(zerolog.WarnLevel)
	}

	opts := []gametree.Option{gametree.WithSearchAnalysis(), gametree.WithPrioritisedOrdering()}
	if *trace {
		opts = append(opts, gametree.WithTrace(logger.Level(zerolog.DebugLevel)))
	}

	tt := gametree.NewTranspositionTable(*ttSize, *maxAge, gametree.WithAnalysis())
	gt := gametree.NewGameTree(tt, tictactoe.Evaluator{}, tictactoe.Generator{}, *depth, opts...)

	runID := uuid.NewString()
	logger.Info().Str("runID", runID).Int("depth", *depth).Msg("starting self-play")

	var board gametree.GameState = tictactoe.NewBoard()
	for ply := 0; ; ply++ {
		os.Stdout.WriteString(board.(*tictactoe.Board).String())
		os.Stdout.WriteString("\n")

		resp := gt.FindBestResponse(board)
		if resp == nil {
			logger.Info().Int("plies", ply).Msg("game over")
			break
		}
		board = resp
		tt.Age()
	}

	analysis := gt.Analysis()
	logger.Info().
		Interface("searchAnalysis", analysis).
		Interface("ttAnalysis", tt.Analysis()).
		Msg("final statistics")
}
