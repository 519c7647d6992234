// Package service contains the curation workflow
package service

import (
	"context"
	"sort"
	"time"

	"voiceloom/internal/core/scoring"
	perr "voiceloom/internal/platform/errors"
	"voiceloom/internal/platform/logger"
	"voiceloom/internal/services/curator/domain"
)

// maxPages bounds pagination so a prolific account cannot stall a request
const maxPages = 5

// Service defines the curator contract
type Service interface {
	domain.ServicePort
}

// Svc implements the curator
// stateless beyond its collaborators
type Svc struct {
	source domain.ContentSource
	now    func() time.Time
}

// New constructs a curator service
func New(source domain.ContentSource) *Svc {
	if source == nil {
		panic("curator.Service requires a non nil ContentSource")
	}
	return &Svc{source: source, now: time.Now}
}

// Curate fetches, filters, scores, sorts, and truncates a creator's posts
func (s *Svc) Curate(ctx context.Context, handle string, cfg domain.Config) (domain.Result, error) {
	cfg = cfg.Normalized()
	log := logger.C(ctx)

	creator, err := s.source.Lookup(ctx, handle)
	if err != nil {
		return domain.Result{}, err
	}

	cutoff := cfg.CreatedCutoff(s.now().UTC())
	engine := scoring.New(cfg.HighEngagement)

	var (
		curated []scoring.CuratedPost
		fetched int
		cursor  string
	)
	for page := 0; page < maxPages; page++ {
		pg, err := s.source.RecentPosts(ctx, handle, cursor)
		if err != nil {
			return domain.Result{}, err
		}
		fetched += len(pg.Posts)

		pastWindow := false
		for _, p := range pg.Posts {
			if p.CreatedAt.Before(cutoff) {
				pastWindow = true
				continue
			}
			if p.IsReply {
				continue
			}
			cp := engine.Score(p)
			if cp.TotalEngagement < cfg.MinEngagement {
				continue
			}
			curated = append(curated, cp)
		}

		// the source returns newest first, a post past the window ends the walk
		if pastWindow || !pg.HasNext || pg.NextCursor == "" {
			break
		}
		cursor = pg.NextCursor
	}

	if len(curated) == 0 {
		if fetched == 0 {
			return domain.Result{}, perr.NoQualifyingPostsf("account @%s has no posts in the last %d days", handle, cfg.MaxAgeDays)
		}
		return domain.Result{}, perr.NoQualifyingPostsf("no posts by @%s cleared the engagement floor of %d", handle, cfg.MinEngagement)
	}

	// total order: viral score, then engagement, then recency
	sort.SliceStable(curated, func(i, j int) bool {
		a, b := curated[i], curated[j]
		if a.ViralScore != b.ViralScore {
			return a.ViralScore > b.ViralScore
		}
		if a.TotalEngagement != b.TotalEngagement {
			return a.TotalEngagement > b.TotalEngagement
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	if len(curated) > cfg.Limit {
		curated = curated[:cfg.Limit]
	}

	log.Debug().
		Str("handle", handle).
		Int("fetched", fetched).
		Int("curated", len(curated)).
		Msg("curation complete")

	return domain.Result{
		Creator: domain.Creator{
			ID:          creator.ID,
			Handle:      creator.Handle,
			DisplayName: creator.DisplayName,
			Followers:   creator.Followers,
			Bio:         creator.Bio,
		},
		Posts:        curated,
		FetchedCount: fetched,
	}, nil
}
