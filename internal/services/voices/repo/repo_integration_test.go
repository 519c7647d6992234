//go:build integration_pg
// +build integration_pg

package repo

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	perr "voiceloom/internal/platform/errors"
	"voiceloom/internal/platform/store"
	"voiceloom/internal/services/voices/domain"
)

func startPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	c, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("postgres"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		cancel()
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err = c.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to build connection string: %v", err)
	}
	stop = func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
	return dsn, stop
}

// openStore connects and applies the schema
func openStore(t *testing.T, ctx context.Context, dsn string) *store.Store {
	t.Helper()

	s, err := store.Open(ctx, store.Config{
		PG: store.PGConfig{Enabled: true, URL: dsn, MaxConns: 2},
	}, store.WithLogger(zerolog.New(io.Discard)))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}

	ddl, err := os.ReadFile("../../../../migrations/001_init.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	for _, stmt := range strings.Split(string(ddl), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := s.PG.Exec(ctx, stmt); err != nil {
			t.Fatalf("apply migration: %v\n%s", err, stmt)
		}
	}
	return s
}

func model(userID, creator string) domain.VoiceModel {
	now := time.Now().UTC()
	return domain.VoiceModel{
		ID:              uuid.NewString(),
		UserID:          userID,
		CreatorUsername: creator,
		DisplayName:     "Test Creator",
		ProfileSummary:  "summary",
		ConfidenceScore: 50,
		SampleCount:     10,
		LastAnalyzedAt:  now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestRepo_Integration_UniqueUserCreator(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	s := openStore(t, ctx, dsn)
	defer func() { _ = s.Close(context.Background()) }()

	r := NewPG().Bind(s.PG)

	if err := r.Insert(ctx, model("u1", "alicewrites")); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	err := r.Insert(ctx, model("u1", "alicewrites"))
	if !perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
		t.Fatalf("second insert err = %v, want duplicate key", err)
	}

	// same creator under another user is fine
	if err := r.Insert(ctx, model("u2", "alicewrites")); err != nil {
		t.Fatalf("other-user insert: %v", err)
	}

	ok, err := r.ExistsByUserCreator(ctx, "u1", "AliceWrites")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !ok {
		t.Fatal("exists check must match case-insensitively")
	}
}

func TestRepo_Integration_CountAndDelete(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	s := openStore(t, ctx, dsn)
	defer func() { _ = s.Close(context.Background()) }()

	r := NewPG().Bind(s.PG)

	var last domain.VoiceModel
	for i := 0; i < domain.MaxModelsPerUser; i++ {
		last = model("u1", fmt.Sprintf("creator%d", i))
		if err := r.Insert(ctx, last); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	n, err := r.CountByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != domain.MaxModelsPerUser {
		t.Fatalf("count = %d, want %d", n, domain.MaxModelsPerUser)
	}

	// wrong owner does not delete
	ok, err := r.DeleteByIDAndUser(ctx, last.ID, "u2")
	if err != nil {
		t.Fatalf("foreign delete: %v", err)
	}
	if ok {
		t.Fatal("foreign delete must report false")
	}

	ok, err = r.DeleteByIDAndUser(ctx, last.ID, "u1")
	if err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if !ok {
		t.Fatal("owner delete must report true")
	}

	n, _ = r.CountByUser(ctx, "u1")
	if n != domain.MaxModelsPerUser-1 {
		t.Fatalf("count after delete = %d, want %d", n, domain.MaxModelsPerUser-1)
	}
}
