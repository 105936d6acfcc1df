package types

import (
	"errors"
	"time"
)

var ErrPackageNotFound = errors.New("package not found")

// StateStore owns all durable bot state. Every mutating method persists the
// full snapshot before returning; a persistence failure rolls the in-memory
// change back and is returned to the caller.
type StateStore interface {
	PremiumExpiry(userID int64) (time.Time, bool)
	GrantPremium(userID int64, expiresAt time.Time) error

	ViewCount(userID int64, day string) int
	RegisterView(userID int64, day string) (int, error)

	Package(id string) (ContentPackage, error)
	HasPackage(id string) bool
	CreatePackage(id string, pkg ContentPackage) error

	KnownChats() []int64
	AddKnownChat(chatID int64) (bool, error)
}

// PendingStore keeps the per-user cover awaiting its video. Entries are
// ephemeral and expire on their own.
type PendingStore interface {
	SetPendingCover(userID int64, cover PendingCover) error
	GetPendingCover(userID int64) (*PendingCover, error)
	ClearPendingCover(userID int64) error
}
