package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/fogonlabs/fogon/internal/clock"
	"github.com/fogonlabs/fogon/internal/legalpage/domain"
	"github.com/fogonlabs/fogon/internal/legalpage/repository"
	"github.com/fogonlabs/fogon/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type noopNotifier struct{}

func (noopNotifier) Notify(string) {}

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	conn, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&domain.LegalPage{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:       conn,
		Log:      zap.NewNop(),
		GenID:    node,
		Clock:    clock.NewFakeClock(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)),
		Repo:     repository.Provide(),
		Notifier: noopNotifier{},
	})
}

func TestPutCreatesAndReplaces(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Put(ctx, domain.PutRequest{
		Slug:  "terminos",
		Title: "Terminos y Condiciones",
		Body:  "v1",
	})
	require.NoError(t, err)
	assert.Equal(t, "terminos", created.Slug)

	_, err = svc.Put(ctx, domain.PutRequest{
		Slug:  "terminos",
		Title: "Terminos y Condiciones",
		Body:  "v2",
	})
	require.NoError(t, err)

	got, err := svc.GetBySlug(ctx, "terminos")
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Body)

	pages, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, pages, 1)
}

func TestPutValidatesSlugAndTitle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Put(ctx, domain.PutRequest{Slug: "Bad Slug!", Title: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidSlug)

	_, err = svc.Put(ctx, domain.PutRequest{Slug: "privacidad", Title: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidTitle)
}

func TestDeleteMissingFails(t *testing.T) {
	svc := newTestService(t)

	err := svc.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
