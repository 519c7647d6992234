// Package domain holds the curation contracts shared by services
package domain

import (
	"time"

	"voiceloom/internal/core/scoring"
)

// Config carries the curation thresholds
// passed explicitly so tests can vary them
type Config struct {
	// MaxAgeDays drops posts older than this window
	MaxAgeDays int

	// MinEngagement is the floor a post's totalEngagement must clear
	MinEngagement int64

	// Limit bounds the curated set, capped at LimitCap
	Limit int

	// HighEngagement anchors the zero-view viral score fallback
	HighEngagement int64
}

// LimitCap is the hard upper bound on the curated set size
const LimitCap = 100

// Defaults used when a Config field is zero
const (
	DefaultMaxAgeDays    = 90
	DefaultMinEngagement = 100
	DefaultLimit         = 30
)

// Normalized returns cfg with zero fields replaced by defaults and Limit capped
func (c Config) Normalized() Config {
	if c.MaxAgeDays <= 0 {
		c.MaxAgeDays = DefaultMaxAgeDays
	}
	if c.MinEngagement <= 0 {
		c.MinEngagement = DefaultMinEngagement
	}
	if c.Limit <= 0 {
		c.Limit = DefaultLimit
	}
	if c.Limit > LimitCap {
		c.Limit = LimitCap
	}
	if c.HighEngagement <= 0 {
		c.HighEngagement = scoring.DefaultHighEngagementThreshold
	}
	return c
}

// Creator is the display info surfaced with a curation result
type Creator struct {
	ID          string `json:"id"`
	Handle      string `json:"handle"`
	DisplayName string `json:"display_name"`
	Followers   int64  `json:"followers"`
	Bio         string `json:"bio"`
}

// Result is a successful curation outcome
type Result struct {
	Creator Creator
	Posts   []scoring.CuratedPost

	// FetchedCount is how many posts the content source returned before filtering
	FetchedCount int
}

// CreatedCutoff returns the oldest allowed post time for the window ending at now
func (c Config) CreatedCutoff(now time.Time) time.Time {
	return now.AddDate(0, 0, -c.MaxAgeDays)
}
