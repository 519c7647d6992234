package domain

import (
	"context"

	curatordomain "voiceloom/internal/services/curator/domain"
	voicesdomain "voiceloom/internal/services/voices/domain"
)

// Outcome is the result of a full analysis run
type Outcome struct {
	Session TrainingSession
	Model   voicesdomain.VoiceModel
}

// AnalyzeResult is the collect-only result surfaced by the analyze endpoint
type AnalyzeResult struct {
	Session TrainingSession
	Creator curatordomain.Creator

	// TotalEngagement sums across the curated set
	TotalEngagement int64
}

// ServicePort is consumed by handlers
type ServicePort interface {
	// StartAnalysis runs curate -> build -> persist synchronously and returns
	// the final session with the produced model
	StartAnalysis(ctx context.Context, userID, creatorUsername string) (Outcome, error)

	// Analyze runs the collect phase only, no model is built
	Analyze(ctx context.Context, userID, creatorUsername string) (AnalyzeResult, error)
}
