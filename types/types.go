package types

import "time"

// ContentPackage bundles a teaser cover with the full video it unlocks.
// Immutable once created.
type ContentPackage struct {
	CoverFileID string `json:"cover"`
	Caption     string `json:"caption"`
	VideoFileID string `json:"video"`
}

// PendingCover is a captioned cover photo waiting for its video.
type PendingCover struct {
	CoverFileID string    `json:"cover_file_id"`
	Caption     string    `json:"caption"`
	CreatedAt   time.Time `json:"created_at"`
}

// Snapshot is the on-disk persistence envelope. Premium expiries are stored
// as RFC3339 strings and view counters under YYYY-MM-DD keys, both in UTC.
type Snapshot struct {
	Premium  map[string]string         `json:"premium"`
	Views    map[string]map[string]int `json:"views"`
	Packages map[string]ContentPackage `json:"packages"`
	Chats    []int64                   `json:"chats"`
}
