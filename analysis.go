package gametree

// maxAnalysisDepth bounds the per-depth breakdown in AnalysisData, mirroring
// the original engine's fixed MAX_DEPTH array size. Depths beyond this are
// still searched correctly; only their per-depth counters are not broken out.
const maxAnalysisDepth = 10

// AnalysisData holds search-driver statistics accumulated across calls to
// FindBestResponse until ResetAnalysis is called. Collection only happens
// when the GameTree was built WithAnalysis.
type AnalysisData struct {
	GeneratedCounts [maxAnalysisDepth]int `json:"generatedCounts"`
	EvaluatedCounts [maxAnalysisDepth]int `json:"evaluatedCounts"`
	Value           float32               `json:"value"`
	AlphaCutoffs    int                   `json:"alphaCutoffs"`
	BetaCutoffs     int                   `json:"betaCutoffs"`
}

// TTAnalysisData holds transposition-table statistics accumulated since
// the table was built or last reset. usage is deliberately never cleared
// by Reset, matching how the original engine tracks live occupancy rather
// than per-run activity.
type TTAnalysisData struct {
	CheckCount     int `json:"checkCount"`
	UpdateCount    int `json:"updateCount"`
	HitCount       int `json:"hitCount"`
	CollisionCount int `json:"collisionCount"`
	Rejected       int `json:"rejected"`
	Overwritten    int `json:"overwritten"`
	Refreshed      int `json:"refreshed"`
	Usage          int `json:"usage"`
}
