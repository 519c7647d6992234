// Package repo provides postgres access for generated variations
package repo

import (
	"context"

	"voiceloom/internal/core/archetype"
	"voiceloom/internal/modkit/repokit"
	perr "voiceloom/internal/platform/errors"
	"voiceloom/internal/platform/store"
	"voiceloom/internal/services/variations/domain"
)

// Repo is the persistence surface for tweet variations
type Repo interface {
	Insert(ctx context.Context, v domain.TweetVariation) error
	ListByModel(ctx context.Context, voiceModelID string) ([]domain.TweetVariation, error)
	ListByRequest(ctx context.Context, voiceModelID, requestID string) ([]domain.TweetVariation, error)
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

const variationCols = `
id::text, voice_model_id::text, request_id, archetype, content,
character_count, generation_ms, created_at`

func scanVariation(r repokit.Row) (domain.TweetVariation, error) {
	var v domain.TweetVariation
	var arch string
	err := r.Scan(
		&v.ID,
		&v.VoiceModelID,
		&v.RequestID,
		&arch,
		&v.Content,
		&v.CharacterCount,
		&v.GenerationMs,
		&v.CreatedAt,
	)
	v.Archetype = archetype.Archetype(arch)
	return v, err
}

func (r *queries) Insert(ctx context.Context, v domain.TweetVariation) error {
	const sql = `
insert into tweet_variations
(id, voice_model_id, request_id, archetype, content,
character_count, generation_ms, created_at)
values ($1, $2, $3, $4, $5, $6, $7, $8)
`
	_, err := r.q.Exec(ctx, sql,
		v.ID, v.VoiceModelID, v.RequestID, string(v.Archetype), v.Content,
		v.CharacterCount, v.GenerationMs, v.CreatedAt,
	)
	if err != nil {
		return perr.FromPostgres(err, "insert tweet variation")
	}
	return nil
}

func (r *queries) ListByModel(ctx context.Context, voiceModelID string) ([]domain.TweetVariation, error) {
	const sql = `
select` + variationCols + `
from tweet_variations
where voice_model_id = $1
order by created_at desc, archetype asc
`
	return store.Many(ctx, r.q, scanVariation, sql, voiceModelID)
}

func (r *queries) ListByRequest(ctx context.Context, voiceModelID, requestID string) ([]domain.TweetVariation, error) {
	const sql = `
select` + variationCols + `
from tweet_variations
where voice_model_id = $1 and request_id = $2
order by archetype asc
`
	return store.Many(ctx, r.q, scanVariation, sql, voiceModelID, requestID)
}
