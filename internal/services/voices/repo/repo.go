// Package repo provides postgres access for voice models
package repo

import (
	"context"

	"voiceloom/internal/modkit/repokit"
	perr "voiceloom/internal/platform/errors"
	"voiceloom/internal/platform/store"
	"voiceloom/internal/services/voices/domain"
)

// Repo is the persistence surface for voice models
type Repo interface {
	Insert(ctx context.Context, m domain.VoiceModel) error
	GetByID(ctx context.Context, id string) (domain.VoiceModel, error)
	ListByUser(ctx context.Context, userID string) ([]domain.VoiceModel, error)
	CountByUser(ctx context.Context, userID string) (int, error)
	ExistsByUserCreator(ctx context.Context, userID, creatorUsername string) (bool, error)
	DeleteByIDAndUser(ctx context.Context, id, userID string) (bool, error)
	UpdateProfile(ctx context.Context, m domain.VoiceModel) error
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

const modelCols = `
id::text, user_id, creator_username, display_name, profile_summary,
confidence_score, sample_tweet_count, last_analyzed_at, created_at, updated_at`

func scanModel(r repokit.Row) (domain.VoiceModel, error) {
	var m domain.VoiceModel
	err := r.Scan(
		&m.ID,
		&m.UserID,
		&m.CreatorUsername,
		&m.DisplayName,
		&m.ProfileSummary,
		&m.ConfidenceScore,
		&m.SampleCount,
		&m.LastAnalyzedAt,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *queries) Insert(ctx context.Context, m domain.VoiceModel) error {
	const sql = `
insert into voice_models
(id, user_id, creator_username, display_name, profile_summary,
confidence_score, sample_tweet_count, last_analyzed_at, created_at, updated_at)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`
	_, err := r.q.Exec(ctx, sql,
		m.ID, m.UserID, m.CreatorUsername, m.DisplayName, m.ProfileSummary,
		m.ConfidenceScore, m.SampleCount, m.LastAnalyzedAt, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return perr.FromPostgres(err, "insert voice model")
	}
	return nil
}

func (r *queries) GetByID(ctx context.Context, id string) (domain.VoiceModel, error) {
	const sql = `
select` + modelCols + `
from voice_models
where id = $1
`
	return store.One(ctx, r.q, scanModel, sql, id)
}

func (r *queries) ListByUser(ctx context.Context, userID string) ([]domain.VoiceModel, error) {
	const sql = `
select` + modelCols + `
from voice_models
where user_id = $1
order by created_at desc
`
	return store.Many(ctx, r.q, scanModel, sql, userID)
}

func (r *queries) CountByUser(ctx context.Context, userID string) (int, error) {
	const sql = `select count(*) from voice_models where user_id = $1`
	row := r.q.QueryRow(ctx, sql, userID)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, perr.FromPostgres(err, "count voice models")
	}
	return n, nil
}

func (r *queries) ExistsByUserCreator(ctx context.Context, userID, creatorUsername string) (bool, error) {
	const sql = `
select exists(
	select 1 from voice_models
	where user_id = $1 and creator_username = lower($2)
)`
	row := r.q.QueryRow(ctx, sql, userID, creatorUsername)
	var ok bool
	if err := row.Scan(&ok); err != nil {
		return false, perr.FromPostgres(err, "voice model exists check")
	}
	return ok, nil
}

func (r *queries) DeleteByIDAndUser(ctx context.Context, id, userID string) (bool, error) {
	const sql = `delete from voice_models where id = $1 and user_id = $2`
	tag, err := r.q.Exec(ctx, sql, id, userID)
	if err != nil {
		return false, perr.FromPostgres(err, "delete voice model")
	}
	return tag.RowsAffected() == 1, nil
}

func (r *queries) UpdateProfile(ctx context.Context, m domain.VoiceModel) error {
	const sql = `
update voice_models
set profile_summary = $2,
confidence_score = $3,
sample_tweet_count = $4,
last_analyzed_at = $5,
updated_at = $6
where id = $1
`
	tag, err := r.q.Exec(ctx, sql,
		m.ID, m.ProfileSummary, m.ConfidenceScore, m.SampleCount, m.LastAnalyzedAt, m.UpdatedAt,
	)
	if err != nil {
		return perr.FromPostgres(err, "update voice model profile")
	}
	if tag.RowsAffected() != 1 {
		return perr.NotFoundf("voice model %s not found", m.ID)
	}
	return nil
}
