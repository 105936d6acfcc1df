package packages

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dncarrero/videoclub-bot/types"
	"github.com/rs/zerolog"
)

var (
	ErrNoPendingCover = errors.New("no pending cover for user")
	ErrEmptyCaption   = errors.New("cover caption is empty")
)

// Manager pairs a captioned cover photo with the next video from the same
// uploader and turns them into an addressable content package.
type Manager struct {
	state   types.StateStore
	pending types.PendingStore
	now     func() time.Time
	log     zerolog.Logger
}

func NewManager(state types.StateStore, pending types.PendingStore, log zerolog.Logger) *Manager {
	return &Manager{
		state:   state,
		pending: pending,
		now:     time.Now,
		log:     log,
	}
}

// WithClock replaces the time source, for tests.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// BeginUpload stores the cover and caption as the user's pending upload.
// A second cover before the video simply replaces the first.
func (m *Manager) BeginUpload(userID int64, coverFileID, caption string) error {
	caption = strings.TrimSpace(caption)
	if caption == "" {
		return ErrEmptyCaption
	}
	return m.pending.SetPendingCover(userID, types.PendingCover{
		CoverFileID: coverFileID,
		Caption:     caption,
		CreatedAt:   m.now().UTC(),
	})
}

// CompleteUpload consumes the user's pending cover and mints a new package.
// A video with no pending cover is rejected with ErrNoPendingCover and
// changes nothing.
func (m *Manager) CompleteUpload(userID int64, videoFileID string) (string, types.ContentPackage, error) {
	cover, err := m.pending.GetPendingCover(userID)
	if err != nil {
		return "", types.ContentPackage{}, err
	}
	if cover == nil {
		return "", types.ContentPackage{}, ErrNoPendingCover
	}

	pkg := types.ContentPackage{
		CoverFileID: cover.CoverFileID,
		Caption:     cover.Caption,
		VideoFileID: videoFileID,
	}
	id := m.mintID()
	if err := m.state.CreatePackage(id, pkg); err != nil {
		return "", types.ContentPackage{}, err
	}
	if err := m.pending.ClearPendingCover(userID); err != nil {
		m.log.Warn().Err(err).Int64("user_id", userID).Msg("failed to clear pending cover")
	}
	m.log.Info().Str("package_id", id).Int64("user_id", userID).Str("caption", pkg.Caption).
		Msg("content package created")
	return id, pkg, nil
}

func (m *Manager) Get(id string) (types.ContentPackage, error) {
	return m.state.Package(id)
}

// mintID derives the package id from the UTC creation second. Two packages
// in the same second get a numeric suffix.
func (m *Manager) mintID() string {
	base := strconv.FormatInt(m.now().UTC().Unix(), 10)
	id := base
	for n := 1; m.state.HasPackage(id); n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	return id
}
