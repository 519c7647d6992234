// Package scoring computes engagement and virality scores for creator posts
package scoring

import "time"

// RawPost is an immutable snapshot of a post from the content source
type RawPost struct {
	ID            string
	Text          string
	CreatedAt     time.Time
	AuthorHandle  string
	LikeCount     int64
	RetweetCount  int64
	ReplyCount    int64
	QuoteCount    int64
	ViewCount     int64
	BookmarkCount int64
	IsReply       bool
}

// CuratedPost is a RawPost plus derived engagement figures
// read only after creation
type CuratedPost struct {
	RawPost

	TotalEngagement int64
	ViralScore      float64
}

// DefaultHighEngagementThreshold anchors the zero-view fallback score
const DefaultHighEngagementThreshold = 2000

// Engine scores posts deterministically
// zero value is not usable, construct via New
type Engine struct {
	highEngagement int64
}

// New constructs an Engine
// highEngagement <= 0 falls back to the default threshold
func New(highEngagement int64) *Engine {
	if highEngagement <= 0 {
		highEngagement = DefaultHighEngagementThreshold
	}
	return &Engine{highEngagement: highEngagement}
}

// Score derives a CuratedPost from a RawPost
// pure function, no side effects
func (e *Engine) Score(p RawPost) CuratedPost {
	eng := p.LikeCount + p.RetweetCount + p.ReplyCount + p.QuoteCount

	var score float64
	if p.ViewCount > 0 {
		// engagement per view, clipped to [0,1]
		score = float64(eng) / float64(p.ViewCount)
		if score > 1 {
			score = 1
		}
		if score < 0 {
			score = 0
		}
	} else {
		// zero reach data, rank by absolute engagement against the anchor
		score = float64(eng) / float64(e.highEngagement)
		if score > 1 {
			score = 1
		}
	}

	return CuratedPost{
		RawPost:         p,
		TotalEngagement: eng,
		ViralScore:      score,
	}
}
