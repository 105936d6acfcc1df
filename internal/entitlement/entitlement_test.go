package entitlement

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dncarrero/videoclub-bot/store"
)

func newTestEngine(t *testing.T, freeLimit int) (*Engine, *time.Time) {
	t.Helper()
	s, err := store.NewSnapshotStore(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)

	now := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)
	clock := &now
	engine := NewEngine(s, freeLimit).WithClock(func() time.Time { return *clock })
	return engine, clock
}

func TestPremiumExpiresByTime(t *testing.T) {
	e, clock := newTestEngine(t, 3)

	assert.False(t, e.IsPremium(1))

	_, err := e.GrantPremium(1, 30*24*time.Hour)
	require.NoError(t, err)
	assert.True(t, e.IsPremium(1))

	*clock = clock.Add(29 * 24 * time.Hour)
	assert.True(t, e.IsPremium(1))

	*clock = clock.Add(2 * 24 * time.Hour)
	assert.False(t, e.IsPremium(1))
}

func TestFreeQuotaExhaustsAndRollsOver(t *testing.T) {
	e, clock := newTestEngine(t, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, e.CanView(7), "view %d should be allowed", i+1)
		n, err := e.RegisterView(7)
		require.NoError(t, err)
		assert.Equal(t, i+1, n)
	}
	assert.False(t, e.CanView(7))

	// Still the same UTC day.
	*clock = clock.Add(8 * time.Hour)
	assert.False(t, e.CanView(7))

	// Crossing UTC midnight resets the count.
	*clock = clock.Add(2 * time.Hour)
	assert.True(t, e.CanView(7))
	assert.Equal(t, 0, e.ViewsToday(7))
}

func TestPremiumBypassesQuota(t *testing.T) {
	e, _ := newTestEngine(t, 3)

	for i := 0; i < 3; i++ {
		_, err := e.RegisterView(9)
		require.NoError(t, err)
	}
	assert.False(t, e.CanView(9))

	_, err := e.GrantPremium(9, 30*24*time.Hour)
	require.NoError(t, err)
	assert.True(t, e.CanView(9))
}

func TestGrantPremiumResetsCounters(t *testing.T) {
	e, _ := newTestEngine(t, 3)

	for i := 0; i < 3; i++ {
		_, err := e.RegisterView(5)
		require.NoError(t, err)
	}

	// An already-expired grant still wipes the counters, so the reset is
	// observable without the premium bypass masking it.
	_, err := e.GrantPremium(5, -time.Hour)
	require.NoError(t, err)

	assert.False(t, e.IsPremium(5))
	assert.Equal(t, 0, e.ViewsToday(5))
	assert.True(t, e.CanView(5))
}

func TestDefaultFreeLimit(t *testing.T) {
	e, _ := newTestEngine(t, 0)
	assert.Equal(t, DefaultFreeDailyViews, e.FreeLimit())
}
