package gametree

import "github.com/rs/zerolog"

// Form selects the shape of the search algorithm. Both forms implement
// the same alpha-beta pruning semantics and are required to return
// bit-identical best responses; the choice is purely about which code
// path runs.
type Form int

const (
	// NegamaxForm evaluates every ply with a single recursive function
	// and a sign-flipping "factor", re-using one comparison for both
	// players. This is the default: it is half the code of the explicit
	// form and is how most production engines in this package's lineage
	// are written.
	NegamaxForm Form = iota
	// TwoFunctionForm evaluates first-player (maximizing) and
	// second-player (minimizing) plies with separate functions that
	// compare raw, unnormalized values. Kept alongside NegamaxForm to
	// verify the two stay equivalent; see the negamax equivalence test.
	TwoFunctionForm
)

// Option configures a GameTree at construction time. The zero value of
// GameTree's options matches the original engine's compile-time defaults
// with every optional feature off.
type Option func(*GameTree)

// WithForm selects which of the two equivalent search algorithms runs.
func WithForm(f Form) Option {
	return func(gt *GameTree) { gt.form = f }
}

// WithPrioritisedOrdering enables the two-level move-ordering heuristic:
// responses whose cached quality already exceeds the ply's target
// quality are searched before the rest, independent of their value.
func WithPrioritisedOrdering() Option {
	return func(gt *GameTree) { gt.prioritisedOrdering = true }
}

// WithQuiescentThreshold enables the one-ply quiescent extension and sets
// the minimum |value delta| that triggers it. Pass +Inf (or simply don't
// call this option) to leave quiescent search disabled.
func WithQuiescentThreshold(threshold float32) Option {
	return func(gt *GameTree) {
		gt.quiescentSearch = true
		gt.quiescentThreshold = threshold
	}
}

// WithSearchAnalysis enables collection of search statistics retrievable
// via GameTree.Analysis. Disabled by default to avoid the bookkeeping
// cost on every node.
func WithSearchAnalysis() Option {
	return func(gt *GameTree) { gt.analysisEnabled = true }
}

// WithTrace emits one debug-level log line per node visited, mirroring
// the original engine's depth-indented stderr trace. Intended for
// interactively debugging a single search, not for production use.
func WithTrace(logger zerolog.Logger) Option {
	return func(gt *GameTree) { gt.trace = &logger }
}

// TTOption configures a TranspositionTable at construction time.
type TTOption func(*TranspositionTable)

// WithAnalysis enables collection of hit/collision/usage statistics
// retrievable via TranspositionTable.Analysis.
func WithAnalysis() TTOption {
	return func(tt *TranspositionTable) { tt.analysisEnabled = true }
}
