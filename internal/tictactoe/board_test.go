package tictactoe

import (
	"testing"

	"github.com/hailam/gametree"
)

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard()
	if b.Winner() != Empty {
		t.Fatalf("expected no winner on an empty board")
	}
	if b.Full() {
		t.Fatalf("empty board should not be full")
	}
	if b.WhoseTurn() != gametree.FirstPlayer {
		t.Fatalf("X should move first")
	}
}

func TestMoveAlternatesTurnAndFingerprint(t *testing.T) {
	b := NewBoard()
	next := b.move(4)

	if next.WhoseTurn() != gametree.SecondPlayer {
		t.Fatalf("expected turn to flip to second player after a move")
	}
	if next.Cell(1, 1) != X {
		t.Fatalf("expected center cell to hold X after move(4)")
	}
	if next.Fingerprint() == b.Fingerprint() {
		t.Fatalf("fingerprint should change after a move")
	}
	if b.Cell(1, 1) != Empty {
		t.Fatalf("move must not mutate the original board")
	}
}

func TestWinnerDetectsRow(t *testing.T) {
	b := NewBoard()
	// X plays 0, O plays 3, X plays 1, O plays 4, X plays 2 -> top row.
	for _, i := range []int{0, 3, 1, 4, 2} {
		b = b.move(i)
	}
	if b.Winner() != X {
		t.Fatalf("expected X to have won the top row, got %q", b.Winner())
	}
}

func TestGeneratorStopsAtTerminalPositions(t *testing.T) {
	b := NewBoard()
	for _, i := range []int{0, 3, 1, 4, 2} {
		b = b.move(i)
	}
	gen := Generator{}
	if resp := gen.GenerateResponses(b, 0); resp != nil {
		t.Fatalf("expected no responses from a won position, got %d", len(resp))
	}
}

func TestFingerprintNeverCollidesWithUnused(t *testing.T) {
	b := NewBoard()
	if b.Fingerprint() == gametree.UnusedFingerprint {
		t.Fatalf("fingerprint must never equal the reserved unused sentinel")
	}
}
