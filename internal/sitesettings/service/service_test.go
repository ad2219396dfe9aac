package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/fogonlabs/fogon/internal/cache"
	"github.com/fogonlabs/fogon/internal/clock"
	"github.com/fogonlabs/fogon/internal/config"
	"github.com/fogonlabs/fogon/internal/sitesettings/domain"
	"github.com/fogonlabs/fogon/internal/sitesettings/repository"
	"github.com/fogonlabs/fogon/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingNotifier struct {
	tables []string
}

func (n *recordingNotifier) Notify(table string) {
	n.tables = append(n.tables, table)
}

func newTestService(t *testing.T) (domain.Service, *recordingNotifier) {
	t.Helper()

	conn, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&domain.SiteSettings{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	theme, err := config.NewThemeHolder()
	require.NoError(t, err)

	notifier := &recordingNotifier{}
	svc := New(Params{
		DB:       conn,
		Log:      zap.NewNop(),
		GenID:    node,
		Clock:    clock.NewFakeClock(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)),
		Theme:    theme,
		Repo:     repository.Provide(),
		Cache:    cache.NewSettingsCache(),
		Notifier: notifier,
	})
	return svc, notifier
}

func str(v string) *string { return &v }

func TestGetFallsBackToThemeDefaults(t *testing.T) {
	svc, _ := newTestService(t)

	resolved, err := svc.Get(context.Background())
	require.NoError(t, err)

	defaults := config.DefaultTheme()
	assert.Equal(t, defaults.BrandName, resolved.BrandName)
	assert.Equal(t, defaults.HeroTitle, resolved.HeroTitle)
	assert.Equal(t, defaults.AccentColor, resolved.Colors["accentColor"])
	assert.Equal(t, defaults.HeaderBg, resolved.Colors["headerBg"])
}

func TestUpdateOverridesAndResolves(t *testing.T) {
	svc, notifier := newTestService(t)
	ctx := context.Background()

	resolved, err := svc.Update(ctx, domain.UpdateRequest{
		BrandName:   str("Fogon del Valle"),
		RappiURL:    str("https://rappi.example/fogon"),
		MetaPixelID: str("px-123"),
		Colors:      map[string]string{"accentColor": "#112233"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Fogon del Valle", resolved.BrandName)
	assert.Equal(t, "https://rappi.example/fogon", resolved.RappiURL)
	assert.Equal(t, "px-123", resolved.MetaPixelID)
	assert.Equal(t, "#112233", resolved.Colors["accentColor"])
	// Untouched colors still come from the theme.
	assert.Equal(t, config.DefaultTheme().HeaderBg, resolved.Colors["headerBg"])
	assert.Contains(t, notifier.tables, "site_settings")

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Fogon del Valle", got.BrandName)
}

func TestUpdateEmptyStringClearsToDefault(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, domain.UpdateRequest{BrandName: str("Fogon del Valle")})
	require.NoError(t, err)

	resolved, err := svc.Update(ctx, domain.UpdateRequest{BrandName: str("")})
	require.NoError(t, err)
	assert.Equal(t, config.DefaultTheme().BrandName, resolved.BrandName)

	raw, err := svc.GetRaw(ctx)
	require.NoError(t, err)
	assert.Nil(t, raw.BrandName)
}

func TestUpdateKeepsSingleRow(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, domain.UpdateRequest{BrandName: str("Uno")})
	require.NoError(t, err)
	_, err = svc.Update(ctx, domain.UpdateRequest{HeroTitle: str("Dos")})
	require.NoError(t, err)

	raw, err := svc.GetRaw(ctx)
	require.NoError(t, err)
	require.NotNil(t, raw.BrandName)
	assert.Equal(t, "Uno", *raw.BrandName)
	require.NotNil(t, raw.HeroTitle)
	assert.Equal(t, "Dos", *raw.HeroTitle)
}
