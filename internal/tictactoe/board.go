// Package tictactoe is the demo game used to exercise gametree's search
// driver end to end. It contains no engine code of its own: board state,
// fingerprinting and move generation only.
package tictactoe

import (
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/hailam/gametree"
)

// Mark is the contents of a single cell.
type Mark byte

const (
	Empty Mark = '.'
	X     Mark = 'X'
	O     Mark = 'O'
)

const boardSize = 9

// cellHash holds a precomputed xxhash digest per (cell index, mark),
// giving the board a Zobrist-style incremental fingerprint without
// needing a seeded random table: the digest of each fixed "cell holds
// mark" fact is deterministic and the board's fingerprint is the XOR of
// the facts currently true.
var cellHash [boardSize][2]uint64

func init() {
	for i := 0; i < boardSize; i++ {
		cellHash[i][0] = xxhash.Sum64String(markKey(i, X))
		cellHash[i][1] = xxhash.Sum64String(markKey(i, O))
	}
}

func markKey(i int, m Mark) string {
	var sb strings.Builder
	sb.WriteByte(byte('0' + i))
	sb.WriteByte(byte(m))
	return sb.String()
}

// Board is a tic-tac-toe position: 9 cells read left-to-right,
// top-to-bottom, plus whose turn it is. X always moves first.
type Board struct {
	cells       [boardSize]Mark
	turn        gametree.PlayerID
	fingerprint uint64
	response    gametree.GameState
}

// NewBoard returns the empty starting position with X to move.
func NewBoard() *Board {
	b := &Board{turn: gametree.FirstPlayer}
	for i := range b.cells {
		b.cells[i] = Empty
	}
	b.fingerprint = b.computeFingerprint()
	return b
}

func (b *Board) computeFingerprint() uint64 {
	var fp uint64
	for i, m := range b.cells {
		switch m {
		case X:
			fp ^= cellHash[i][0]
		case O:
			fp ^= cellHash[i][1]
		}
	}
	// Mix in whose turn it is so the same cell layout with a different
	// mover doesn't collide.
	if b.turn == gametree.SecondPlayer {
		fp ^= 0x9e3779b97f4a7c15
	}
	if fp == gametree.UnusedFingerprint {
		fp = ^fp
	}
	return fp
}

func (b *Board) Fingerprint() uint64              { return b.fingerprint }
func (b *Board) WhoseTurn() gametree.PlayerID     { return b.turn }
func (b *Board) SetResponse(r gametree.GameState) { b.response = r }
func (b *Board) Response() gametree.GameState     { return b.response }

// Cell returns the mark at row r, column c (each 0-2).
func (b *Board) Cell(r, c int) Mark { return b.cells[r*3+c] }

// markFor returns the mark the player on move plays.
func markFor(p gametree.PlayerID) Mark {
	if p == gametree.FirstPlayer {
		return X
	}
	return O
}

// move returns a copy of b with move played at cell i and the turn
// advanced to the opponent.
func (b *Board) move(i int) *Board {
	next := *b
	next.cells[i] = markFor(b.turn)
	if b.turn == gametree.FirstPlayer {
		next.turn = gametree.SecondPlayer
	} else {
		next.turn = gametree.FirstPlayer
	}
	next.response = nil
	next.fingerprint = next.computeFingerprint()
	return &next
}

var winningLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Winner reports the mark that has three in a row, or Empty if there is
// none.
func (b *Board) Winner() Mark {
	for _, line := range winningLines {
		a, c, d := b.cells[line[0]], b.cells[line[1]], b.cells[line[2]]
		if a != Empty && a == c && c == d {
			return a
		}
	}
	return Empty
}

// Full reports whether every cell is occupied.
func (b *Board) Full() bool {
	for _, m := range b.cells {
		if m == Empty {
			return false
		}
	}
	return true
}

// String renders the board as three rows for debugging and CLI output.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			sb.WriteByte(byte(b.Cell(r, c)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
