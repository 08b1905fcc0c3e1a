package gametree

import "sort"

// priorityLow and priorityHigh are the two move-ordering tiers used when
// prioritised ordering is enabled. They deliberately don't carry the rich
// MVV-LVA/killer/history weighting a chess-specific engine would use:
// this package has no notion of captures or piece values, only cached
// quality relative to the ply's target.
const (
	priorityLow  = 0
	priorityHigh = 1
)

// prioritize returns priorityHigh when a response's cached quality
// already exceeds what this ply would need to search it to, and
// priorityLow otherwise. Searching high-priority responses first lets
// already-accurate values drive alpha/beta tighter before cheaper,
// shallower ones are considered.
func prioritize(quality, targetQuality int) int {
	if quality > targetQuality {
		return priorityHigh
	}
	return priorityLow
}

// sortByNormalizedDescending orders responses for the negamax form: by
// priority descending (when prioritised ordering is in play), then by
// value*factor descending. Multiplying by factor normalizes both
// players' values onto the same maximizing scale so a single comparison
// works regardless of whose turn it is.
func sortByNormalizedDescending(responses []*node, factor float32, prioritised bool) {
	sort.SliceStable(responses, func(i, j int) bool {
		a, b := responses[i], responses[j]
		if prioritised && a.priority != b.priority {
			return a.priority > b.priority
		}
		return a.value*factor > b.value*factor
	})
}

// sortResponses orders responses for the explicit two-function form: by
// priority descending (when prioritised ordering is in play), then by
// raw value, descending for the first player's search and ascending for
// the second's.
func sortResponses(responses []*node, descending, prioritised bool) {
	sort.SliceStable(responses, func(i, j int) bool {
		a, b := responses[i], responses[j]
		if prioritised && a.priority != b.priority {
			return a.priority > b.priority
		}
		if descending {
			return a.value > b.value
		}
		return a.value < b.value
	})
}
