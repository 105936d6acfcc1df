package entitlement

import (
	"time"

	"github.com/dncarrero/videoclub-bot/types"
)

const DefaultFreeDailyViews = 3

// Engine decides whether a user may view content. Premium users bypass the
// quota entirely; free users get a fixed number of views per UTC calendar
// day. The day boundary alone resets the count.
type Engine struct {
	state     types.StateStore
	freeLimit int
	now       func() time.Time
}

func NewEngine(state types.StateStore, freeLimit int) *Engine {
	if freeLimit <= 0 {
		freeLimit = DefaultFreeDailyViews
	}
	return &Engine{
		state:     state,
		freeLimit: freeLimit,
		now:       time.Now,
	}
}

// WithClock replaces the time source, for tests.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func (e *Engine) FreeLimit() int {
	return e.freeLimit
}

func (e *Engine) IsPremium(userID int64) bool {
	expiry, ok := e.state.PremiumExpiry(userID)
	if !ok {
		return false
	}
	return expiry.After(e.now().UTC())
}

// PremiumExpiry reports the stored expiry even when it already passed.
func (e *Engine) PremiumExpiry(userID int64) (time.Time, bool) {
	return e.state.PremiumExpiry(userID)
}

func (e *Engine) ViewsToday(userID int64) int {
	return e.state.ViewCount(userID, dayKey(e.now()))
}

func (e *Engine) CanView(userID int64) bool {
	if e.IsPremium(userID) {
		return true
	}
	return e.ViewsToday(userID) < e.freeLimit
}

// RegisterView burns one view for today. Callers must have already passed
// CanView and any subscription gate; no re-check happens here.
func (e *Engine) RegisterView(userID int64) (int, error) {
	return e.state.RegisterView(userID, dayKey(e.now()))
}

// GrantPremium extends the entitlement and wipes every daily counter for the
// user, so a previously exhausted quota never shadows a fresh purchase.
func (e *Engine) GrantPremium(userID int64, duration time.Duration) (time.Time, error) {
	expiresAt := e.now().UTC().Add(duration)
	if err := e.state.GrantPremium(userID, expiresAt); err != nil {
		return time.Time{}, err
	}
	return expiresAt, nil
}
