package tictactoe

import "github.com/hailam/gametree"

// Generator is the ResponseGenerator for tic-tac-toe: it produces one
// successor board per empty cell. A finished game (a line already won,
// or the board full) has no responses, which the driver treats as a
// terminal leaf.
type Generator struct{}

func (Generator) GenerateResponses(s gametree.GameState, depth int) []gametree.GameState {
	b := s.(*Board)
	if b.Winner() != Empty || b.Full() {
		return nil
	}
	var out []gametree.GameState
	for i, m := range b.cells {
		if m == Empty {
			out = append(out, b.move(i))
		}
	}
	return out
}
