package handlers

import (
	"context"

	"github.com/dncarrero/videoclub-bot/types"
)

type PackageGetter interface {
	Get(id string) (types.ContentPackage, error)
}

type MembershipChecker interface {
	IsSubscribedToAll(ctx context.Context, userID int64) (bool, []string)
}

type QuotaChecker interface {
	CanView(userID int64) bool
}

type Verdict int

const (
	VerdictOK Verdict = iota
	VerdictNotFound
	VerdictNotSubscribed
	VerdictQuotaExceeded
)

// ViewGate runs the three preconditions for delivering a full video, in
// order: the package must exist, then the user must be subscribed to every
// required channel, then quota. Each gate short-circuits, so a request that
// fails an early gate never reaches — and never consumes — a later one.
type ViewGate struct {
	Packages PackageGetter
	Verifier MembershipChecker
	Quota    QuotaChecker
}

func (g *ViewGate) Check(ctx context.Context, userID int64, packageID string) (types.ContentPackage, []string, Verdict) {
	pkg, err := g.Packages.Get(packageID)
	if err != nil {
		return types.ContentPackage{}, nil, VerdictNotFound
	}

	ok, missing := g.Verifier.IsSubscribedToAll(ctx, userID)
	if !ok {
		return types.ContentPackage{}, missing, VerdictNotSubscribed
	}

	if !g.Quota.CanView(userID) {
		return types.ContentPackage{}, nil, VerdictQuotaExceeded
	}

	return pkg, nil, VerdictOK
}
