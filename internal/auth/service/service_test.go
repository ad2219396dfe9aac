package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/fogonlabs/fogon/internal/auth/domain"
	"github.com/fogonlabs/fogon/internal/auth/password"
	"github.com/fogonlabs/fogon/internal/auth/repository"
	"github.com/fogonlabs/fogon/internal/clock"
	"github.com/fogonlabs/fogon/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, *clock.FakeClock, *gorm.DB) {
	t.Helper()

	conn, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&domain.User{}, &domain.Session{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	fake := clock.NewFakeClock(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
	svc := New(Params{
		DB:    conn,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: fake,
		Repo:  repository.Provide(),
	})
	return svc, fake, conn
}

func seedUser(t *testing.T, conn *gorm.DB, email, rawPassword, role string) {
	t.Helper()

	hash, err := password.Hash(rawPassword)
	require.NoError(t, err)
	require.NoError(t, conn.Create(&domain.User{
		ID:           time.Now().UnixNano(),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}).Error)
}

func TestLoginAndAuthenticate(t *testing.T) {
	svc, _, conn := newTestService(t)
	ctx := context.Background()

	seedUser(t, conn, "admin@example.com", "secreto123", domain.RoleAdmin)

	identity, err := svc.Login(ctx, "Admin@Example.com", "secreto123")
	require.NoError(t, err)
	assert.True(t, identity.IsAdmin())
	assert.NotEmpty(t, identity.Session.Token)

	resolved, err := svc.Authenticate(ctx, identity.Session.Token)
	require.NoError(t, err)
	assert.Equal(t, identity.User.ID, resolved.User.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, conn := newTestService(t)
	ctx := context.Background()

	seedUser(t, conn, "admin@example.com", "secreto123", domain.RoleAdmin)

	_, err := svc.Login(ctx, "admin@example.com", "incorrecto")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nadie@example.com", "secreto123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthenticateExpiredSession(t *testing.T) {
	svc, fake, conn := newTestService(t)
	ctx := context.Background()

	seedUser(t, conn, "admin@example.com", "secreto123", domain.RoleAdmin)
	identity, err := svc.Login(ctx, "admin@example.com", "secreto123")
	require.NoError(t, err)

	fake.Advance(8 * 24 * time.Hour)

	_, err = svc.Authenticate(ctx, identity.Session.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, _, conn := newTestService(t)
	ctx := context.Background()

	seedUser(t, conn, "admin@example.com", "secreto123", domain.RoleAdmin)
	identity, err := svc.Login(ctx, "admin@example.com", "secreto123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, identity.Session.Token))

	_, err = svc.Authenticate(ctx, identity.Session.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	// Logging out twice is harmless.
	assert.NoError(t, svc.Logout(ctx, identity.Session.Token))
}
