// Package service contains the voice model registry and builder workflows
package service

import (
	"context"
	"time"

	"voiceloom/internal/modkit/repokit"
	perr "voiceloom/internal/platform/errors"
	"voiceloom/internal/platform/logger"
	curatordomain "voiceloom/internal/services/curator/domain"
	"voiceloom/internal/services/voices/domain"
	"voiceloom/internal/services/voices/repo"
)

// Config carries the tunables for profile building
type Config struct {
	// Curation thresholds reused on refresh
	Curation curatordomain.Config

	// PromptBudget caps embedded sample characters, zero uses the prompt default
	PromptBudget int

	// Temperature for the extraction call, analysis wants it low
	Temperature float64
}

// Service is the combined registry and builder contract
type Service interface {
	domain.RegistryPort
	domain.BuilderPort
}

// Svc implements the voice model registry and builder
type Svc struct {
	Repo    repo.Repo
	binder  repokit.Binder[repo.Repo]
	db      repokit.TxRunner
	gen     domain.TextGenerator
	curator curatordomain.ServicePort
	cfg     Config

	now   func() time.Time
	newID func() string
}

// New constructs the voices service
// curator may be nil when refresh is not needed (tests)
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], gen domain.TextGenerator, curator curatordomain.ServicePort, cfg Config) *Svc {
	if db == nil {
		panic("voices.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("voices.Service requires a non nil Repo binder")
	}
	if gen == nil {
		panic("voices.Service requires a non nil TextGenerator")
	}
	return &Svc{
		Repo:    binder.Bind(db),
		binder:  binder,
		db:      db,
		gen:     gen,
		curator: curator,
		cfg:     cfg,
		now:     time.Now,
		newID:   newUUID,
	}
}

// List returns the caller's models as summaries, newest first
func (s *Svc) List(ctx context.Context, userID string) ([]domain.Summary, error) {
	models, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Summary, 0, len(models))
	for _, m := range models {
		out = append(out, m.Summarize())
	}
	return out, nil
}

// Get returns a model by id regardless of owner
// ownership checks are the caller's responsibility
func (s *Svc) Get(ctx context.Context, id string) (domain.VoiceModel, error) {
	m, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.VoiceModel{}, perr.NotFoundf("voice model %s not found", id)
		}
		return domain.VoiceModel{}, err
	}
	return m, nil
}

// Exists reports whether the user already has a model for the creator
func (s *Svc) Exists(ctx context.Context, userID, creatorUsername string) (bool, error) {
	return s.Repo.ExistsByUserCreator(ctx, userID, creatorUsername)
}

// Delete removes a model owned by userID
// returns false when the model is missing or owned by someone else
func (s *Svc) Delete(ctx context.Context, id, userID string) (bool, error) {
	return s.Repo.DeleteByIDAndUser(ctx, id, userID)
}

// Refresh re-curates the creator and rebuilds the profile in place
// id and createdAt are preserved, not-found and not-owned are indistinguishable
func (s *Svc) Refresh(ctx context.Context, id, userID string) (domain.VoiceModel, error) {
	if s.curator == nil {
		return domain.VoiceModel{}, perr.Internalf("refresh requires a curator")
	}

	m, err := s.Get(ctx, id)
	if err != nil {
		return domain.VoiceModel{}, err
	}
	if m.UserID != userID {
		return domain.VoiceModel{}, perr.NotFoundf("voice model %s not found", id)
	}

	res, err := s.curator.Curate(ctx, m.CreatorUsername, s.cfg.Curation)
	if err != nil {
		return domain.VoiceModel{}, err
	}

	summary, sampleCount, err := s.extractProfile(ctx, m.CreatorUsername, res.Creator.DisplayName, res.Posts)
	if err != nil {
		return domain.VoiceModel{}, err
	}

	now := s.now().UTC()
	m.ProfileSummary = summary
	m.ConfidenceScore = confidence(sampleCount, meanViralScore(res.Posts[:sampleCount]))
	m.SampleCount = sampleCount
	m.LastAnalyzedAt = now
	m.UpdatedAt = now
	if res.Creator.DisplayName != "" {
		m.DisplayName = res.Creator.DisplayName
	}

	if err := s.Repo.UpdateProfile(ctx, m); err != nil {
		return domain.VoiceModel{}, err
	}

	logger.C(ctx).Info().
		Str("voice_model_id", m.ID).
		Int("sample_count", m.SampleCount).
		Int("confidence", m.ConfidenceScore).
		Msg("voice model refreshed")

	return m, nil
}
