package tictactoe

import "github.com/hailam/gametree"

// Evaluator is the StaticEvaluator for tic-tac-toe. Because the game is
// small enough to search to completion, it only needs to recognize wins;
// non-terminal positions evaluate to a flat draw-ish score, which is fine
// since the search always reaches a terminal state well within a 9-ply
// horizon.
type Evaluator struct{}

const (
	firstPlayerWins  float32 = 1
	secondPlayerWins float32 = -1
	drawOrOngoing    float32 = 0
)

func (Evaluator) FirstPlayerWins() float32  { return firstPlayerWins }
func (Evaluator) SecondPlayerWins() float32 { return secondPlayerWins }

func (Evaluator) Evaluate(s gametree.GameState) float32 {
	b := s.(*Board)
	switch b.Winner() {
	case X:
		return firstPlayerWins
	case O:
		return secondPlayerWins
	default:
		return drawOrOngoing
	}
}
