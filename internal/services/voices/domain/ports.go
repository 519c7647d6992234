package domain

import (
	"context"

	"voiceloom/internal/core/scoring"
)

// TextGenerator is the generation-service seam
// satisfied by the textgen client
type TextGenerator interface {
	Complete(ctx context.Context, system, user string, temperature float64) (string, error)
}

// RegistryPort is the model lifecycle surface consumed by handlers and the
// training pipeline. Get performs no ownership check, callers verify
// model.UserID themselves before exposing a model.
type RegistryPort interface {
	List(ctx context.Context, userID string) ([]Summary, error)
	Get(ctx context.Context, id string) (VoiceModel, error)
	Exists(ctx context.Context, userID, creatorUsername string) (bool, error)
	Delete(ctx context.Context, id, userID string) (bool, error)
	Refresh(ctx context.Context, id, userID string) (VoiceModel, error)
}

// BuilderPort turns a curated post set into a persisted VoiceModel
type BuilderPort interface {
	Build(ctx context.Context, userID, creatorUsername, displayName string, posts []scoring.CuratedPost) (VoiceModel, error)
}
