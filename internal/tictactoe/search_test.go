package tictactoe

import (
	"testing"

	"github.com/hailam/gametree"
)

// TestOptimalSelfPlayDraws exercises the full gametree driver against a
// game small enough to solve outright: two perfect tic-tac-toe players
// facing each other from the empty board always draw.
func TestOptimalSelfPlayDraws(t *testing.T) {
	tt := gametree.NewTranspositionTable(4096, 16)
	gt := gametree.NewGameTree(tt, Evaluator{}, Generator{}, 9, gametree.WithSearchAnalysis())

	board := gametree.GameState(NewBoard())
	moves := 0
	for {
		resp := gt.FindBestResponse(board)
		if resp == nil {
			break
		}
		board = resp
		moves++
		if moves > 9 {
			t.Fatalf("game did not terminate within 9 moves")
		}
	}

	b := board.(*Board)
	if b.Winner() != Empty {
		t.Fatalf("two perfect players should draw, but %q won", b.Winner())
	}
	if !b.Full() {
		t.Fatalf("expected the board to be full at the end of optimal self-play")
	}
}

func TestFirstPlayerPunishesObviousBlunder(t *testing.T) {
	tt := gametree.NewTranspositionTable(4096, 16)
	gt := gametree.NewGameTree(tt, Evaluator{}, Generator{}, 9)

	b := NewBoard()
	b = b.move(0) // X corner
	b = b.move(4) // O takes center, fine
	b = b.move(8) // X opposite corner
	b = b.move(2) // O takes a corner instead of an edge, allowing X a fork

	resp := gt.FindBestResponse(b)
	if resp == nil {
		t.Fatalf("expected a response from a non-terminal position")
	}
	result := resp.(*Board)
	for {
		next := gt.FindBestResponse(result)
		if next == nil {
			break
		}
		result = next.(*Board)
	}
	if result.Winner() != X {
		t.Fatalf("X should win after O's blunder, got winner %q", result.Winner())
	}
}

func TestBothFormsAgreeOnOpeningMove(t *testing.T) {
	ttA := gametree.NewTranspositionTable(4096, 16)
	negamax := gametree.NewGameTree(ttA, Evaluator{}, Generator{}, 9, gametree.WithForm(gametree.NegamaxForm))

	ttB := gametree.NewTranspositionTable(4096, 16)
	twoFn := gametree.NewGameTree(ttB, Evaluator{}, Generator{}, 9, gametree.WithForm(gametree.TwoFunctionForm))

	board := NewBoard()
	a := negamax.FindBestResponse(board).(*Board)
	b := twoFn.FindBestResponse(board).(*Board)

	if a.Fingerprint() != b.Fingerprint() {
		t.Fatalf("negamax and two-function forms chose different opening moves")
	}
}
