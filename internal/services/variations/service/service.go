// Package service contains the variation fan-out workflow
package service

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"voiceloom/internal/core/archetype"
	"voiceloom/internal/core/prompt"
	"voiceloom/internal/modkit/repokit"
	perr "voiceloom/internal/platform/errors"
	"voiceloom/internal/platform/logger"
	"voiceloom/internal/services/variations/domain"
	"voiceloom/internal/services/variations/repo"
	voicesdomain "voiceloom/internal/services/voices/domain"
)

// Config carries the tunables for variation generation
type Config struct {
	// Temperature for drafting calls, generation wants it warm
	Temperature float64

	// MaxIdeaLen rejects runaway idea payloads, zero uses the default
	MaxIdeaLen int
}

// DefaultTemperature keeps drafts varied without drifting off voice
const DefaultTemperature = 0.9

// DefaultMaxIdeaLen bounds the idea text
const DefaultMaxIdeaLen = 500

// Service is the variation contract
type Service interface {
	domain.ServicePort
}

// Svc implements variation generation and history
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	gen    voicesdomain.TextGenerator
	voices voicesdomain.RegistryPort
	cfg    Config

	now   func() time.Time
	newID func() string
}

// New constructs the variations service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], gen voicesdomain.TextGenerator, voices voicesdomain.RegistryPort, cfg Config) *Svc {
	if db == nil {
		panic("variations.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("variations.Service requires a non nil Repo binder")
	}
	if gen == nil {
		panic("variations.Service requires a non nil TextGenerator")
	}
	if voices == nil {
		panic("variations.Service requires a non nil registry")
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.MaxIdeaLen <= 0 {
		cfg.MaxIdeaLen = DefaultMaxIdeaLen
	}
	return &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		gen:    gen,
		voices: voices,
		cfg:    cfg,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Generate drafts one variation per archetype concurrently. Successes are
// returned in archetype declaration order and persisted under a shared
// request id. A batch only fails when every archetype fails.
func (s *Svc) Generate(ctx context.Context, userID, modelID, idea string) (domain.GenerateResult, error) {
	model, err := s.ownedModel(ctx, userID, modelID)
	if err != nil {
		return domain.GenerateResult{}, err
	}
	idea, err = s.cleanIdea(idea)
	if err != nil {
		return domain.GenerateResult{}, err
	}

	requestID := s.newID()
	archs := archetype.All()

	type slot struct {
		variation domain.TweetVariation
		err       error
	}
	slots := make([]slot, len(archs))

	var wg sync.WaitGroup
	for i, a := range archs {
		wg.Add(1)
		go func(i int, a archetype.Archetype) {
			defer wg.Done()
			v, err := s.draft(ctx, model, requestID, idea, a)
			slots[i] = slot{variation: v, err: err}
		}(i, a)
	}
	wg.Wait()

	res := domain.GenerateResult{RequestID: requestID}
	for i, sl := range slots {
		if sl.err != nil {
			res.FailedCount++
			logger.C(ctx).Warn().
				Err(sl.err).
				Str("voice_model_id", modelID).
				Str("archetype", string(archs[i])).
				Msg("variation draft failed")
			continue
		}
		res.Variations = append(res.Variations, sl.variation)
	}
	if len(res.Variations) == 0 {
		return domain.GenerateResult{}, perr.Upstreamf("all %d variation drafts failed for voice model %s", len(archs), modelID)
	}

	for _, v := range res.Variations {
		if err := s.Repo.Insert(ctx, v); err != nil {
			return domain.GenerateResult{}, err
		}
	}

	logger.C(ctx).Info().
		Str("voice_model_id", modelID).
		Str("request_id", requestID).
		Int("generated", len(res.Variations)).
		Int("failed", res.FailedCount).
		Msg("variation batch generated")

	return res, nil
}

// Regenerate produces a single fresh draft for one archetype
func (s *Svc) Regenerate(ctx context.Context, userID, modelID, idea string, a archetype.Archetype) (domain.TweetVariation, error) {
	if !archetype.Valid(string(a)) {
		return domain.TweetVariation{}, perr.InvalidArgf("unknown archetype %q", a)
	}
	model, err := s.ownedModel(ctx, userID, modelID)
	if err != nil {
		return domain.TweetVariation{}, err
	}
	idea, err = s.cleanIdea(idea)
	if err != nil {
		return domain.TweetVariation{}, err
	}

	v, err := s.draft(ctx, model, s.newID(), idea, a)
	if err != nil {
		return domain.TweetVariation{}, err
	}
	if err := s.Repo.Insert(ctx, v); err != nil {
		return domain.TweetVariation{}, err
	}
	return v, nil
}

// ListByModel returns the stored history for an owned model
func (s *Svc) ListByModel(ctx context.Context, userID, modelID string) ([]domain.TweetVariation, error) {
	if _, err := s.ownedModel(ctx, userID, modelID); err != nil {
		return nil, err
	}
	return s.Repo.ListByModel(ctx, modelID)
}

// draft runs one generation call and shapes the record
func (s *Svc) draft(ctx context.Context, model voicesdomain.VoiceModel, requestID, idea string, a archetype.Archetype) (domain.TweetVariation, error) {
	p := prompt.BuildVariation(model.ProfileSummary, idea, a)
	start := s.now()
	text, err := s.gen.Complete(ctx, p.System, p.User, s.cfg.Temperature)
	if err != nil {
		return domain.TweetVariation{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.TweetVariation{}, perr.Upstreamf("generation returned empty content for archetype %s", a)
	}
	return domain.TweetVariation{
		ID:             s.newID(),
		VoiceModelID:   model.ID,
		RequestID:      requestID,
		Archetype:      a,
		Content:        text,
		CharacterCount: utf8.RuneCountInString(text),
		GenerationMs:   s.now().Sub(start).Milliseconds(),
		CreatedAt:      s.now().UTC(),
	}, nil
}

// ownedModel resolves the model and hides other users' models as not found
func (s *Svc) ownedModel(ctx context.Context, userID, modelID string) (voicesdomain.VoiceModel, error) {
	model, err := s.voices.Get(ctx, modelID)
	if err != nil {
		return voicesdomain.VoiceModel{}, err
	}
	if model.UserID != userID {
		return voicesdomain.VoiceModel{}, perr.NotFoundf("voice model %s not found", modelID)
	}
	return model, nil
}

func (s *Svc) cleanIdea(idea string) (string, error) {
	idea = strings.TrimSpace(idea)
	if idea == "" {
		return "", perr.InvalidArgf("idea is required")
	}
	if utf8.RuneCountInString(idea) > s.cfg.MaxIdeaLen {
		return "", perr.InvalidArgf("idea exceeds %d characters", s.cfg.MaxIdeaLen)
	}
	return idea, nil
}
