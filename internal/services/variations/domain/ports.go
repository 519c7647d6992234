package domain

import (
	"context"

	"voiceloom/internal/core/archetype"
)

// ServicePort is consumed by handlers. All operations check that the voice
// model belongs to userID and answer not found when it does not.
type ServicePort interface {
	// Generate fans out one draft per archetype for the idea. Partial failure
	// is tolerated, only a batch with zero successes errors.
	Generate(ctx context.Context, userID, modelID, idea string) (GenerateResult, error)

	// Regenerate produces a fresh draft for a single archetype under a new
	// request id
	Regenerate(ctx context.Context, userID, modelID, idea string, a archetype.Archetype) (TweetVariation, error)

	// ListByModel returns the stored history for a model, newest batch first
	ListByModel(ctx context.Context, userID, modelID string) ([]TweetVariation, error)
}
