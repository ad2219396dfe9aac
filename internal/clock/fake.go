package clock

import "time"

// FakeClock is a deterministic Clock for tests. It only moves when
// Advance is called, and it pins everything to UTC so the stamps the
// claim service derives from it compare cleanly regardless of the
// host timezone.
type FakeClock struct {
	current time.Time
}

func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{current: t.UTC()}
}

func (c *FakeClock) Now() time.Time {
	return c.current
}

// Advance moves the clock forward. Session-expiry tests use this to
// cross the TTL boundary without sleeping.
func (c *FakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
