package gametree

import (
	"math"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// sefQuality is the quality assigned to a value freshly computed by the
// static evaluator, as opposed to one derived from a deeper search. It is
// the baseline every other quality is measured against.
const sefQuality = 0

// GameTree drives a bounded-depth alpha-beta search over a host game's
// states, consulting and populating a TranspositionTable along the way.
// A GameTree is not safe for concurrent use; FindBestResponse panics if
// called again while a search is already in flight on the same instance.
type GameTree struct {
	tt       *TranspositionTable
	sef      StaticEvaluator
	rg       ResponseGenerator
	maxDepth int

	form                Form
	prioritisedOrdering bool
	quiescentSearch     bool
	quiescentThreshold  float32
	analysisEnabled     bool
	trace               *zerolog.Logger

	running  atomic.Bool
	analysis AnalysisData
}

// NewGameTree builds a search driver over tt, sef and rg, bounded to
// maxDepth plies (0 still generates the root's responses and picks one by
// its cached or static value, without searching below it).
func NewGameTree(tt *TranspositionTable, sef StaticEvaluator, rg ResponseGenerator, maxDepth int, opts ...Option) *GameTree {
	assertNonNegativeDepth(maxDepth)
	gt := &GameTree{
		tt:       tt,
		sef:      sef,
		rg:       rg,
		maxDepth: maxDepth,
	}
	for _, opt := range opts {
		opt(gt)
	}
	return gt
}

// FindBestResponse searches root to the configured depth and returns the
// response it ultimately chose. If root has no legal responses, root's
// response is left untouched and whatever root.Response() already held is
// returned (nil for a fresh state); the caller is responsible for
// recognizing the position is over.
func (gt *GameTree) FindBestResponse(root GameState) GameState {
	assertNotReentrant(gt.running.Swap(true))
	defer gt.running.Store(false)

	if gt.trace != nil {
		gt.trace.Debug().
			Str("searchID", uuid.NewString()).
			Int("maxDepth", gt.maxDepth).
			Msg("search start")
	}

	n := &node{state: root}
	n.value, n.quality = gt.getValue(root, 0)

	firstWins := gt.sef.FirstPlayerWins()
	secondWins := gt.sef.SecondPlayerWins()

	switch gt.form {
	case TwoFunctionForm:
		if root.WhoseTurn() == FirstPlayer {
			gt.searchFirstPlayer(n, secondWins, firstWins, 0)
		} else {
			gt.searchSecondPlayer(n, secondWins, firstWins, 0)
		}
	default:
		factor := float32(1)
		if root.WhoseTurn() == SecondPlayer {
			factor = -1
		}
		gt.negamax(n, factor, secondWins, firstWins, 0)
	}

	if gt.analysisEnabled {
		gt.analysis.Value = n.value
	}
	return n.state.Response()
}

// Analysis returns a snapshot of accumulated search statistics.
func (gt *GameTree) Analysis() AnalysisData {
	return gt.analysis
}

// ResetAnalysis clears accumulated search statistics.
func (gt *GameTree) ResetAnalysis() {
	gt.analysis = AnalysisData{}
}

func (gt *GameTree) shouldQuiesce(previousValue, thisValue float32) bool {
	if !gt.quiescentSearch {
		return false
	}
	delta := previousValue - thisValue
	if delta < 0 {
		delta = -delta
	}
	return delta >= gt.quiescentThreshold
}

// negamax is the single-function form of the search: every ply is scored
// from the mover's own perspective by multiplying the shared value scale
// by factor, which flips sign between plies. It and
// searchFirstPlayer/searchSecondPlayer together must choose the same
// response for the same position; see the negamax equivalence test.
func (gt *GameTree) negamax(n *node, factor, alpha, beta float32, depth int) {
	responseDepth := depth + 1
	quality := gt.maxDepth - depth
	minResponseQuality := gt.maxDepth - responseDepth

	responses := gt.generateResponses(n, depth)
	if len(responses) == 0 {
		return
	}
	sortByNormalizedDescending(responses, factor, gt.prioritisedOrdering)

	firstWins := gt.sef.FirstPlayerWins()
	pruned := false
	best := &node{value: -math.MaxFloat32 * factor}

	for _, r := range responses {
		if r.value*factor != firstWins {
			if gt.shouldRecurse(n.value, r.value, r.quality, minResponseQuality, responseDepth) {
				gt.negamax(r, -factor, -beta, -alpha, responseDepth)
			}
		}

		gt.traceNode(r, depth, alpha, beta)

		value := r.value * factor
		if value > best.value*factor {
			best = r
			if value == firstWins {
				break
			}
			if value > beta {
				pruned = true
				if gt.analysisEnabled {
					gt.analysis.BetaCutoffs++
				}
				break
			}
			if value > alpha {
				alpha = value
			}
		}
	}

	n.value = best.value
	n.quality = quality
	n.state.SetResponse(best.state)

	if !pruned {
		gt.tt.Update(n.state.Fingerprint(), n.value, n.quality)
	}
}

// searchFirstPlayer is the explicit-form search for a ply where the first
// player (maximizer) is on move.
func (gt *GameTree) searchFirstPlayer(n *node, alpha, beta float32, depth int) {
	responseDepth := depth + 1
	quality := gt.maxDepth - depth
	minResponseQuality := gt.maxDepth - responseDepth

	responses := gt.generateResponses(n, depth)
	if len(responses) == 0 {
		return
	}
	sortResponses(responses, true, gt.prioritisedOrdering)

	firstWins := gt.sef.FirstPlayerWins()
	pruned := false
	best := &node{value: -math.MaxFloat32}

	for _, r := range responses {
		if r.value != firstWins {
			if gt.shouldRecurse(n.value, r.value, r.quality, minResponseQuality, responseDepth) {
				gt.searchSecondPlayer(r, alpha, beta, responseDepth)
			}
		}

		gt.traceNode(r, depth, alpha, beta)

		if r.value > best.value {
			best = r
			if best.value == firstWins {
				break
			}
			if best.value > beta {
				pruned = true
				if gt.analysisEnabled {
					gt.analysis.BetaCutoffs++
				}
				break
			}
			if best.value > alpha {
				alpha = best.value
			}
		}
	}

	n.value = best.value
	n.quality = quality
	n.state.SetResponse(best.state)

	if !pruned {
		gt.tt.Update(n.state.Fingerprint(), n.value, n.quality)
	}
}

// searchSecondPlayer is the explicit-form search for a ply where the
// second player (minimizer) is on move.
func (gt *GameTree) searchSecondPlayer(n *node, alpha, beta float32, depth int) {
	responseDepth := depth + 1
	quality := gt.maxDepth - depth
	minResponseQuality := gt.maxDepth - responseDepth

	responses := gt.generateResponses(n, depth)
	if len(responses) == 0 {
		return
	}
	sortResponses(responses, false, gt.prioritisedOrdering)

	secondWins := gt.sef.SecondPlayerWins()
	pruned := false
	best := &node{value: math.MaxFloat32}

	for _, r := range responses {
		if r.value != secondWins {
			if gt.shouldRecurse(n.value, r.value, r.quality, minResponseQuality, responseDepth) {
				gt.searchFirstPlayer(r, alpha, beta, responseDepth)
			}
		}

		gt.traceNode(r, depth, alpha, beta)

		if r.value < best.value {
			best = r
			if best.value == secondWins {
				break
			}
			if best.value < alpha {
				pruned = true
				if gt.analysisEnabled {
					gt.analysis.AlphaCutoffs++
				}
				break
			}
			if best.value < beta {
				beta = best.value
			}
		}
	}

	n.value = best.value
	n.quality = quality
	n.state.SetResponse(best.state)

	if !pruned {
		gt.tt.Update(n.state.Fingerprint(), n.value, n.quality)
	}
}

// shouldRecurse decides whether a response needs to be searched deeper:
// either the nominal horizon hasn't been reached yet and the response's
// quality is below what this ply needs, or it has, the response's value is
// still only a static evaluation, and the position just swung enough to
// warrant the one-ply quiescent extension.
func (gt *GameTree) shouldRecurse(previousValue, thisValue float32, quality, minQuality, responseDepth int) bool {
	if responseDepth < gt.maxDepth {
		return quality < minQuality
	}
	return quality <= sefQuality && gt.shouldQuiesce(previousValue, thisValue) && responseDepth < gt.maxDepth+1
}

func (gt *GameTree) generateResponses(n *node, depth int) []*node {
	states := gt.rg.GenerateResponses(n.state, depth)
	out := make([]*node, len(states))
	target := gt.maxDepth - depth
	for i, s := range states {
		v, q := gt.getValue(s, depth)
		rn := &node{state: s, value: v, quality: q}
		if gt.prioritisedOrdering {
			rn.priority = prioritize(q, target)
		}
		out[i] = rn
	}
	if gt.analysisEnabled && depth < maxAnalysisDepth {
		gt.analysis.GeneratedCounts[depth] += len(out)
	}
	return out
}

// getValue resolves a state's value and quality, preferring the
// transposition table, then an IncrementalEvaluator the state may offer,
// and finally falling back to the static evaluator. A freshly computed
// value is cached back into the table at sefQuality.
func (gt *GameTree) getValue(s GameState, depth int) (float32, int) {
	fp := s.Fingerprint()
	if res, ok := gt.tt.Check(fp); ok {
		return res.Value, res.Quality
	}

	var v float32
	if ie, ok := s.(IncrementalEvaluator); ok {
		if pv, ok2 := ie.PrecomputedValue(); ok2 {
			v = pv
		} else {
			v = gt.sef.Evaluate(s)
		}
	} else {
		v = gt.sef.Evaluate(s)
	}
	assertValidValue(v, gt.sef.FirstPlayerWins(), gt.sef.SecondPlayerWins())

	if gt.analysisEnabled && depth < maxAnalysisDepth {
		gt.analysis.EvaluatedCounts[depth]++
	}
	gt.tt.Update(fp, v, sefQuality)
	return v, sefQuality
}

func (gt *GameTree) traceNode(n *node, depth int, alpha, beta float32) {
	if gt.trace == nil {
		return
	}
	gt.trace.Debug().
		Int("depth", depth).
		Uint64("fingerprint", n.state.Fingerprint()).
		Float32("value", n.value).
		Int("quality", n.quality).
		Float32("alpha", alpha).
		Float32("beta", beta).
		Msg("node")
}
