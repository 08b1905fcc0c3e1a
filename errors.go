package gametree

import (
	"fmt"
	"math"
)

// These invariant violations indicate a programming error in the host
// application (a malformed GameState, evaluator, or a re-entrant call)
// rather than a runtime condition the caller can recover from, so the
// driver panics instead of returning an error, matching how the rest of
// this package treats contract violations.

func assertValidFingerprint(fp uint64) {
	if fp == UnusedFingerprint {
		panic(fmt.Sprintf("gametree: fingerprint %#x collides with the reserved unused-entry sentinel", fp))
	}
}

func assertNonNegativeDepth(maxDepth int) {
	if maxDepth < 0 {
		panic(fmt.Sprintf("gametree: maxDepth must be >= 0, got %d", maxDepth))
	}
}

func assertNotReentrant(alreadyRunning bool) {
	if alreadyRunning {
		panic("gametree: FindBestResponse called while a search is already in progress on this GameTree")
	}
}

func assertValidValue(v, firstWins, secondWins float32) {
	if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
		panic(fmt.Sprintf("gametree: evaluator returned a non-finite value %v", v))
	}
	if v > firstWins || v < secondWins {
		panic(fmt.Sprintf("gametree: evaluator returned %v, outside [%v, %v]", v, secondWins, firstWins))
	}
}
