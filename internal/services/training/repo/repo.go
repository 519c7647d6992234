// Package repo provides postgres access for training sessions
package repo

import (
	"context"
	"encoding/json"
	"time"

	"voiceloom/internal/core/scoring"
	"voiceloom/internal/modkit/repokit"
	perr "voiceloom/internal/platform/errors"
	"voiceloom/internal/platform/store"
	"voiceloom/internal/services/training/domain"
)

// Repo is the persistence surface for training sessions
type Repo interface {
	Insert(ctx context.Context, s domain.TrainingSession) error
	GetByID(ctx context.Context, id string) (domain.TrainingSession, error)
	MarkTraining(ctx context.Context, id string, posts []scoring.CuratedPost) error
	MarkCompleted(ctx context.Context, id string, at time.Time) error
	MarkFailed(ctx context.Context, id, errorMessage string, at time.Time) error
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) Insert(ctx context.Context, s domain.TrainingSession) error {
	const sql = `
insert into training_sessions
(id, user_id, creator_username, status, created_at)
values ($1, $2, $3, $4, $5)
`
	_, err := r.q.Exec(ctx, sql, s.ID, s.UserID, s.CreatorUsername, string(s.Status), s.CreatedAt)
	if err != nil {
		return perr.FromPostgres(err, "insert training session")
	}
	return nil
}

func (r *queries) GetByID(ctx context.Context, id string) (domain.TrainingSession, error) {
	const sql = `
select id::text, user_id, creator_username, status, collected_posts, error_message, created_at, completed_at
from training_sessions
where id = $1
`
	return store.One(ctx, r.q, scanSession, sql, id)
}

func scanSession(row repokit.Row) (domain.TrainingSession, error) {
	var (
		s       domain.TrainingSession
		status  string
		rawJSON []byte
		errMsg  *string
	)
	if err := row.Scan(&s.ID, &s.UserID, &s.CreatorUsername, &status, &rawJSON, &errMsg, &s.CreatedAt, &s.CompletedAt); err != nil {
		return s, err
	}
	s.Status = domain.Status(status)
	if errMsg != nil {
		s.ErrorMessage = *errMsg
	}
	if len(rawJSON) > 0 {
		if err := json.Unmarshal(rawJSON, &s.CollectedPosts); err != nil {
			return s, perr.Wrapf(err, perr.ErrorCodeJSON, "decode collected posts")
		}
	}
	return s, nil
}

func (r *queries) MarkTraining(ctx context.Context, id string, posts []scoring.CuratedPost) error {
	raw, err := json.Marshal(posts)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeJSON, "encode collected posts")
	}
	const sql = `
update training_sessions
set status = $2, collected_posts = $3
where id = $1
`
	tag, err := r.q.Exec(ctx, sql, id, string(domain.StatusTraining), raw)
	if err != nil {
		return perr.FromPostgres(err, "mark training session training")
	}
	if tag.RowsAffected() != 1 {
		return perr.NotFoundf("training session %s not found", id)
	}
	return nil
}

func (r *queries) MarkCompleted(ctx context.Context, id string, at time.Time) error {
	const sql = `
update training_sessions
set status = $2, completed_at = $3
where id = $1
`
	tag, err := r.q.Exec(ctx, sql, id, string(domain.StatusCompleted), at)
	if err != nil {
		return perr.FromPostgres(err, "mark training session completed")
	}
	if tag.RowsAffected() != 1 {
		return perr.NotFoundf("training session %s not found", id)
	}
	return nil
}

func (r *queries) MarkFailed(ctx context.Context, id, errorMessage string, at time.Time) error {
	const sql = `
update training_sessions
set status = $2, error_message = $3, completed_at = $4
where id = $1
`
	tag, err := r.q.Exec(ctx, sql, id, string(domain.StatusFailed), errorMessage, at)
	if err != nil {
		return perr.FromPostgres(err, "mark training session failed")
	}
	if tag.RowsAffected() != 1 {
		return perr.NotFoundf("training session %s not found", id)
	}
	return nil
}
