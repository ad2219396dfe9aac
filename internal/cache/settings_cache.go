package cache

import (
	"time"

	sitesettingsdomain "github.com/fogonlabs/fogon/internal/sitesettings/domain"
)

const defaultSettingsTTL = 30 * time.Second

const settingsKey = "resolved"

// SettingsCache stores the resolved storefront settings between reads;
// the settings service invalidates it on every update.
type SettingsCache struct {
	inner Cache[string, sitesettingsdomain.Resolved]
	ttl   time.Duration
}

func NewSettingsCache() *SettingsCache {
	return &SettingsCache{
		inner: NewTTLCache[string, sitesettingsdomain.Resolved](),
		ttl:   defaultSettingsTTL,
	}
}

func (c *SettingsCache) Get() (sitesettingsdomain.Resolved, bool) {
	return c.inner.Get(settingsKey)
}

func (c *SettingsCache) Set(resolved sitesettingsdomain.Resolved) {
	c.inner.Set(settingsKey, resolved, c.ttl)
}

func (c *SettingsCache) Invalidate() {
	c.inner.Delete(settingsKey)
}
