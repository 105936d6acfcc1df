package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dncarrero/videoclub-bot/types"
)

type fakePackages struct {
	pkgs  map[string]types.ContentPackage
	calls int
}

func (f *fakePackages) Get(id string) (types.ContentPackage, error) {
	f.calls++
	pkg, ok := f.pkgs[id]
	if !ok {
		return types.ContentPackage{}, types.ErrPackageNotFound
	}
	return pkg, nil
}

type fakeVerifier struct {
	subscribed bool
	missing    []string
	calls      int
}

func (f *fakeVerifier) IsSubscribedToAll(context.Context, int64) (bool, []string) {
	f.calls++
	return f.subscribed, f.missing
}

type fakeQuota struct {
	allowed bool
	calls   int
}

func (f *fakeQuota) CanView(int64) bool {
	f.calls++
	return f.allowed
}

func newTestGate(hasPackage, subscribed, quota bool) (*ViewGate, *fakePackages, *fakeVerifier, *fakeQuota) {
	pkgs := &fakePackages{pkgs: map[string]types.ContentPackage{}}
	if hasPackage {
		pkgs.pkgs["p1"] = types.ContentPackage{CoverFileID: "c", Caption: "x", VideoFileID: "v"}
	}
	verifier := &fakeVerifier{subscribed: subscribed, missing: []string{"@canal1"}}
	if subscribed {
		verifier.missing = nil
	}
	q := &fakeQuota{allowed: quota}
	return &ViewGate{Packages: pkgs, Verifier: verifier, Quota: q}, pkgs, verifier, q
}

func TestGateAllPass(t *testing.T) {
	g, _, _, _ := newTestGate(true, true, true)

	pkg, missing, verdict := g.Check(context.Background(), 1, "p1")
	assert.Equal(t, VerdictOK, verdict)
	assert.Empty(t, missing)
	assert.Equal(t, "v", pkg.VideoFileID)
}

func TestGateUnknownPackageShortCircuits(t *testing.T) {
	g, _, verifier, quota := newTestGate(false, true, true)

	_, _, verdict := g.Check(context.Background(), 1, "p1")
	assert.Equal(t, VerdictNotFound, verdict)
	// Later gates must not run, so a doomed request consumes nothing.
	assert.Equal(t, 0, verifier.calls)
	assert.Equal(t, 0, quota.calls)
}

func TestGateNotSubscribedShortCircuitsQuota(t *testing.T) {
	g, _, verifier, quota := newTestGate(true, false, true)

	_, missing, verdict := g.Check(context.Background(), 1, "p1")
	assert.Equal(t, VerdictNotSubscribed, verdict)
	assert.Equal(t, []string{"@canal1"}, missing)
	assert.Equal(t, 1, verifier.calls)
	assert.Equal(t, 0, quota.calls)
}

func TestGateQuotaExceeded(t *testing.T) {
	g, pkgs, verifier, quota := newTestGate(true, true, false)

	_, _, verdict := g.Check(context.Background(), 1, "p1")
	assert.Equal(t, VerdictQuotaExceeded, verdict)
	assert.Equal(t, 1, pkgs.calls)
	assert.Equal(t, 1, verifier.calls)
	assert.Equal(t, 1, quota.calls)
}
