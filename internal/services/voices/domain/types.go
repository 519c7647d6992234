// Package domain holds the voice model records and contracts
package domain

import "time"

// VoiceModel is a persisted structured summary of a creator's writing style
type VoiceModel struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	CreatorUsername string    `json:"creator_username"`
	DisplayName     string    `json:"display_name"`
	ProfileSummary  string    `json:"profile_summary"`
	ConfidenceScore int       `json:"confidence_score"`
	SampleCount     int       `json:"sample_tweet_count"`
	LastAnalyzedAt  time.Time `json:"last_analyzed_at"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Summary is the listing projection, profile text withheld
type Summary struct {
	ID              string    `json:"id"`
	CreatorUsername string    `json:"creator_username"`
	DisplayName     string    `json:"display_name"`
	ConfidenceScore int       `json:"confidence_score"`
	SampleCount     int       `json:"sample_tweet_count"`
	LastAnalyzedAt  time.Time `json:"last_analyzed_at"`
	CreatedAt       time.Time `json:"created_at"`
}

// MaxModelsPerUser is the registry quota
const MaxModelsPerUser = 10

// Summarize projects a VoiceModel to its listing shape
func (m VoiceModel) Summarize() Summary {
	return Summary{
		ID:              m.ID,
		CreatorUsername: m.CreatorUsername,
		DisplayName:     m.DisplayName,
		ConfidenceScore: m.ConfidenceScore,
		SampleCount:     m.SampleCount,
		LastAnalyzedAt:  m.LastAnalyzedAt,
		CreatedAt:       m.CreatedAt,
	}
}
