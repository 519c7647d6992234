package service

import (
	"context"

	"github.com/google/uuid"

	"voiceloom/internal/core/prompt"
	"voiceloom/internal/core/scoring"
	"voiceloom/internal/modkit/repokit"
	perr "voiceloom/internal/platform/errors"
	"voiceloom/internal/platform/logger"
	"voiceloom/internal/services/voices/domain"
)

func newUUID() string { return uuid.NewString() }

// Build extracts a voice profile from curated posts and persists the model
// posts must be sorted best-first as the curator returns them
func (s *Svc) Build(ctx context.Context, userID, creatorUsername, displayName string, posts []scoring.CuratedPost) (domain.VoiceModel, error) {
	if len(posts) == 0 {
		return domain.VoiceModel{}, perr.InvalidArgf("cannot build a voice model from zero posts")
	}

	// cheap guards before spending a generation call
	// the unique constraint and in-tx count remain the authoritative checks
	if exists, err := s.Repo.ExistsByUserCreator(ctx, userID, creatorUsername); err != nil {
		return domain.VoiceModel{}, err
	} else if exists {
		return domain.VoiceModel{}, perr.DuplicateKeyf("voice model for @%s already exists", creatorUsername)
	}
	if n, err := s.Repo.CountByUser(ctx, userID); err != nil {
		return domain.VoiceModel{}, err
	} else if n >= domain.MaxModelsPerUser {
		return domain.VoiceModel{}, perr.QuotaExceededf("voice model quota of %d reached", domain.MaxModelsPerUser)
	}

	summary, sampleCount, err := s.extractProfile(ctx, creatorUsername, displayName, posts)
	if err != nil {
		return domain.VoiceModel{}, err
	}

	now := s.now().UTC()
	m := domain.VoiceModel{
		ID:              s.newID(),
		UserID:          userID,
		CreatorUsername: creatorUsername,
		DisplayName:     displayName,
		ProfileSummary:  summary,
		ConfidenceScore: confidence(sampleCount, meanViralScore(posts[:sampleCount])),
		SampleCount:     sampleCount,
		LastAnalyzedAt:  now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.create(ctx, m); err != nil {
		return domain.VoiceModel{}, err
	}

	logger.C(ctx).Info().
		Str("voice_model_id", m.ID).
		Str("creator", creatorUsername).
		Int("sample_count", m.SampleCount).
		Int("confidence", m.ConfidenceScore).
		Msg("voice model created")

	return m, nil
}

// create inserts the model with the quota check inside the same transaction
// a concurrent duplicate loses on the unique constraint and gets DuplicateKey
func (s *Svc) create(ctx context.Context, m domain.VoiceModel) error {
	return repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		n, err := r.CountByUser(ctx, m.UserID)
		if err != nil {
			return err
		}
		if n >= domain.MaxModelsPerUser {
			return perr.QuotaExceededf("voice model quota of %d reached", domain.MaxModelsPerUser)
		}
		return r.Insert(ctx, m)
	})
}

// extractProfile runs the single generation call and returns the summary text
// plus how many posts made it into the prompt sample
func (s *Svc) extractProfile(ctx context.Context, handle, displayName string, posts []scoring.CuratedPost) (string, int, error) {
	p := prompt.BuildProfile(handle, displayName, posts, s.cfg.PromptBudget)

	text, err := s.gen.Complete(ctx, p.System, p.User, s.cfg.Temperature)
	if err != nil {
		return "", 0, err
	}
	return text, p.SampleCount, nil
}

// confidence scales with sample size and mean viral score
// coefficients are heuristic and tunable, output clamped to [0,100]
func confidence(samples int, meanViral float64) int {
	base := samples * 5
	if base > 50 {
		base = 50
	}
	score := base + int(meanViral*50+0.5)
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

func meanViralScore(posts []scoring.CuratedPost) float64 {
	if len(posts) == 0 {
		return 0
	}
	var sum float64
	for _, p := range posts {
		sum += p.ViralScore
	}
	return sum / float64(len(posts))
}
