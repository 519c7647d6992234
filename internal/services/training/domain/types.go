// Package domain holds the training session state machine and records
package domain

import (
	"fmt"
	"time"

	"voiceloom/internal/core/scoring"
)

// Status is a training session state
type Status string

// Session states
const (
	StatusCollecting Status = "collecting"
	StatusTraining   Status = "training"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// legal transitions, everything else is a programming error
var legal = map[Status][]Status{
	StatusCollecting: {StatusTraining, StatusFailed},
	StatusTraining:   {StatusCompleted, StatusFailed},
}

// CanTransition reports whether from -> to is a legal move
func (s Status) CanTransition(to Status) bool {
	for _, t := range legal[s] {
		if t == to {
			return true
		}
	}
	return false
}

// Terminal reports whether the state is final
func (s Status) Terminal() bool { return s == StatusCompleted || s == StatusFailed }

// TrainingSession tracks one attempt to turn a creator's posts into a model
// retained forever for audit, never deleted by the pipeline
type TrainingSession struct {
	ID              string                `json:"id"`
	UserID          string                `json:"user_id"`
	CreatorUsername string                `json:"creator_username"`
	Status          Status                `json:"status"`
	CollectedPosts  []scoring.CuratedPost `json:"collected_posts,omitempty"`
	ErrorMessage    string                `json:"error_message,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	CompletedAt     *time.Time            `json:"completed_at,omitempty"`
}

// Advance moves the session to the next state
// an illegal transition panics because the session manager is the sole
// status writer and any other move is a bug, not a runtime condition
func (s *TrainingSession) Advance(to Status) {
	if !s.Status.CanTransition(to) {
		panic(fmt.Sprintf("illegal training session transition %s -> %s", s.Status, to))
	}
	s.Status = to
}
