// Package service contains the training session workflow
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"voiceloom/internal/core/handle"
	"voiceloom/internal/modkit/repokit"
	perr "voiceloom/internal/platform/errors"
	"voiceloom/internal/platform/logger"
	ptime "voiceloom/internal/platform/time"
	curatordomain "voiceloom/internal/services/curator/domain"
	"voiceloom/internal/services/training/domain"
	"voiceloom/internal/services/training/repo"
	voicesdomain "voiceloom/internal/services/voices/domain"
)

// Service defines the training contract
type Service interface {
	domain.ServicePort
}

// Svc implements the training session manager
// it is the sole writer of session status
type Svc struct {
	Repo    repo.Repo
	binder  repokit.Binder[repo.Repo]
	db      repokit.TxRunner
	curator curatordomain.ServicePort
	builder voicesdomain.BuilderPort
	voices  voicesdomain.RegistryPort
	cfg     curatordomain.Config

	now   func() time.Time
	newID func() string
}

// New constructs the training service
func New(
	db repokit.TxRunner,
	binder repokit.Binder[repo.Repo],
	curator curatordomain.ServicePort,
	builder voicesdomain.BuilderPort,
	voices voicesdomain.RegistryPort,
	cfg curatordomain.Config,
) *Svc {
	if db == nil {
		panic("training.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("training.Service requires a non nil Repo binder")
	}
	if curator == nil {
		panic("training.Service requires a non nil curator")
	}
	if builder == nil {
		panic("training.Service requires a non nil builder")
	}
	if voices == nil {
		panic("training.Service requires a non nil registry")
	}
	return &Svc{
		Repo:    binder.Bind(db),
		binder:  binder,
		db:      db,
		curator: curator,
		builder: builder,
		voices:  voices,
		cfg:     cfg,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// StartAnalysis runs the full collecting -> training -> completed/failed
// sequence synchronously and returns the final session with its model
func (s *Svc) StartAnalysis(ctx context.Context, userID, creatorUsername string) (domain.Outcome, error) {
	sess, res, err := s.collect(ctx, userID, creatorUsername)
	if err != nil {
		return domain.Outcome{Session: sess}, err
	}

	model, err := s.builder.Build(ctx, userID, sess.CreatorUsername, res.Creator.DisplayName, res.Posts)
	if err != nil {
		s.fail(ctx, &sess, err)
		return domain.Outcome{Session: sess}, err
	}

	sess.Advance(domain.StatusCompleted)
	at := s.now().UTC()
	sess.CompletedAt = ptime.Ptr(at)
	if err := s.Repo.MarkCompleted(ctx, sess.ID, at); err != nil {
		return domain.Outcome{Session: sess}, err
	}

	logger.C(ctx).Info().
		Str("session_id", sess.ID).
		Str("voice_model_id", model.ID).
		Str("creator", sess.CreatorUsername).
		Msg("training session completed")

	return domain.Outcome{Session: sess, Model: model}, nil
}

// Analyze runs the collect phase only and reports the curated set
// no model is built, the session is left in the training state for audit
func (s *Svc) Analyze(ctx context.Context, userID, creatorUsername string) (domain.AnalyzeResult, error) {
	sess, res, err := s.collect(ctx, userID, creatorUsername)
	if err != nil {
		return domain.AnalyzeResult{Session: sess}, err
	}

	var total int64
	for _, p := range res.Posts {
		total += p.TotalEngagement
	}
	return domain.AnalyzeResult{
		Session:         sess,
		Creator:         res.Creator,
		TotalEngagement: total,
	}, nil
}

// collect validates the handle, refuses duplicates, creates the session, and
// runs curation through the collecting -> training transition
func (s *Svc) collect(ctx context.Context, userID, creatorUsername string) (domain.TrainingSession, curatordomain.Result, error) {
	canonical, err := handle.Normalize(creatorUsername)
	if err != nil {
		return domain.TrainingSession{}, curatordomain.Result{}, err
	}

	// conflict before session creation, a duplicate run is not worth a session row
	exists, err := s.voices.Exists(ctx, userID, canonical)
	if err != nil {
		return domain.TrainingSession{}, curatordomain.Result{}, err
	}
	if exists {
		return domain.TrainingSession{}, curatordomain.Result{}, perr.DuplicateKeyf("voice model for @%s already exists", canonical)
	}

	sess := domain.TrainingSession{
		ID:              s.newID(),
		UserID:          userID,
		CreatorUsername: canonical,
		Status:          domain.StatusCollecting,
		CreatedAt:       s.now().UTC(),
	}
	if err := s.Repo.Insert(ctx, sess); err != nil {
		return sess, curatordomain.Result{}, err
	}

	res, err := s.curator.Curate(ctx, canonical, s.cfg)
	if err != nil {
		s.fail(ctx, &sess, err)
		return sess, curatordomain.Result{}, err
	}

	sess.Advance(domain.StatusTraining)
	sess.CollectedPosts = res.Posts
	if err := s.Repo.MarkTraining(ctx, sess.ID, res.Posts); err != nil {
		return sess, curatordomain.Result{}, err
	}
	return sess, res, nil
}

// fail moves the session to failed and records the cause
// persistence errors here are logged, the original error matters more
func (s *Svc) fail(ctx context.Context, sess *domain.TrainingSession, cause error) {
	sess.Advance(domain.StatusFailed)
	sess.ErrorMessage = cause.Error()
	at := s.now().UTC()
	sess.CompletedAt = ptime.Ptr(at)
	if err := s.Repo.MarkFailed(ctx, sess.ID, sess.ErrorMessage, at); err != nil {
		logger.C(ctx).Error().Err(err).Str("session_id", sess.ID).Msg("could not persist session failure")
	}
}
