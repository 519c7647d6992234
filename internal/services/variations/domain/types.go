// Package domain holds the generated variation records and contracts
package domain

import (
	"time"

	"voiceloom/internal/core/archetype"
)

// TweetVariation is one generated draft in a creator's voice
type TweetVariation struct {
	ID             string              `json:"id"`
	VoiceModelID   string              `json:"voice_model_id"`
	RequestID      string              `json:"request_id"`
	Archetype      archetype.Archetype `json:"archetype"`
	Content        string              `json:"content"`
	CharacterCount int                 `json:"character_count"`
	GenerationMs   int64               `json:"generation_ms"`
	CreatedAt      time.Time           `json:"created_at"`
}

// GenerateResult is one fan-out batch. Variations holds the successes in
// archetype declaration order, FailedCount how many archetypes produced
// nothing.
type GenerateResult struct {
	RequestID   string           `json:"request_id"`
	Variations  []TweetVariation `json:"variations"`
	FailedCount int              `json:"failed_count"`
}
