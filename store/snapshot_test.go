package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dncarrero/videoclub-bot/types"
)

func newTestStore(t *testing.T) (*SnapshotStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	s, err := NewSnapshotStore(path)
	require.NoError(t, err)
	return s, path
}

func TestNewSnapshotStoreMissingFile(t *testing.T) {
	s, _ := newTestStore(t)

	assert.Empty(t, s.KnownChats())
	assert.False(t, s.HasPackage("123"))
	_, ok := s.PremiumExpiry(1)
	assert.False(t, ok)
}

func TestSnapshotRoundTrip(t *testing.T) {
	s, path := newTestStore(t)

	expiry := time.Date(2026, 9, 27, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.GrantPremium(42, expiry))

	_, err := s.RegisterView(7, "2026-08-28")
	require.NoError(t, err)
	_, err = s.RegisterView(7, "2026-08-28")
	require.NoError(t, err)

	require.NoError(t, s.CreatePackage("1756380000", types.ContentPackage{
		CoverFileID: "cover-1",
		Caption:     "Movie X",
		VideoFileID: "video-1",
	}))

	added, err := s.AddKnownChat(-100123)
	require.NoError(t, err)
	assert.True(t, added)

	reloaded, err := NewSnapshotStore(path)
	require.NoError(t, err)

	got, ok := reloaded.PremiumExpiry(42)
	assert.True(t, ok)
	assert.True(t, got.Equal(expiry))

	assert.Equal(t, 2, reloaded.ViewCount(7, "2026-08-28"))

	pkg, err := reloaded.Package("1756380000")
	require.NoError(t, err)
	assert.Equal(t, "Movie X", pkg.Caption)
	assert.Equal(t, "video-1", pkg.VideoFileID)

	assert.Equal(t, []int64{-100123}, reloaded.KnownChats())
}

func TestRegisterViewIncrements(t *testing.T) {
	s, _ := newTestStore(t)

	for want := 1; want <= 3; want++ {
		n, err := s.RegisterView(1, "2026-08-28")
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}
	assert.Equal(t, 3, s.ViewCount(1, "2026-08-28"))
	assert.Equal(t, 0, s.ViewCount(1, "2026-08-29"))
}

func TestGrantPremiumClearsViews(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.RegisterView(1, "2026-08-27")
	require.NoError(t, err)
	_, err = s.RegisterView(1, "2026-08-28")
	require.NoError(t, err)

	require.NoError(t, s.GrantPremium(1, time.Now().UTC().Add(30*24*time.Hour)))

	assert.Equal(t, 0, s.ViewCount(1, "2026-08-27"))
	assert.Equal(t, 0, s.ViewCount(1, "2026-08-28"))
}

func TestCreatePackageDuplicate(t *testing.T) {
	s, _ := newTestStore(t)

	pkg := types.ContentPackage{CoverFileID: "c", Caption: "x", VideoFileID: "v"}
	require.NoError(t, s.CreatePackage("100", pkg))
	assert.Error(t, s.CreatePackage("100", pkg))
}

func TestPackageNotFound(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Package("nope")
	assert.ErrorIs(t, err, types.ErrPackageNotFound)
}

func TestAddKnownChatDeduplicates(t *testing.T) {
	s, _ := newTestStore(t)

	added, err := s.AddKnownChat(-1)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = s.AddKnownChat(-1)
	require.NoError(t, err)
	assert.False(t, added)

	assert.Equal(t, []int64{-1}, s.KnownChats())
}
