package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/dncarrero/videoclub-bot/types"
)

// SnapshotStore holds all durable state in memory and mirrors it to a single
// JSON file after every mutation. Writes go through a temp file and a rename
// so a crash mid-write never truncates the previous snapshot.
type SnapshotStore struct {
	mu    sync.Mutex
	path  string
	state types.Snapshot
}

func NewSnapshotStore(path string) (*SnapshotStore, error) {
	s := &SnapshotStore{
		path: path,
		state: types.Snapshot{
			Premium:  map[string]string{},
			Views:    map[string]map[string]int{},
			Packages: map[string]types.ContentPackage{},
			Chats:    []int64{},
		},
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SnapshotStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read snapshot %s: %w", s.path, err)
	}
	var snap types.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decode snapshot %s: %w", s.path, err)
	}
	if snap.Premium == nil {
		snap.Premium = map[string]string{}
	}
	if snap.Views == nil {
		snap.Views = map[string]map[string]int{}
	}
	if snap.Packages == nil {
		snap.Packages = map[string]types.ContentPackage{}
	}
	if snap.Chats == nil {
		snap.Chats = []int64{}
	}
	s.state = snap
	return nil
}

// saveLocked rewrites the whole snapshot. Callers hold s.mu.
func (s *SnapshotStore) saveLocked() error {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

func userKey(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

func (s *SnapshotStore) PremiumExpiry(userID int64) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.state.Premium[userKey(userID)]
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// GrantPremium sets the expiry and clears every daily counter for the user
// in one persisted mutation.
func (s *SnapshotStore) GrantPremium(userID int64, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := userKey(userID)
	prevExpiry, hadExpiry := s.state.Premium[key]
	prevViews, hadViews := s.state.Views[key]

	s.state.Premium[key] = expiresAt.UTC().Format(time.RFC3339)
	delete(s.state.Views, key)

	if err := s.saveLocked(); err != nil {
		if hadExpiry {
			s.state.Premium[key] = prevExpiry
		} else {
			delete(s.state.Premium, key)
		}
		if hadViews {
			s.state.Views[key] = prevViews
		}
		return err
	}
	return nil
}

func (s *SnapshotStore) ViewCount(userID int64, day string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Views[userKey(userID)][day]
}

func (s *SnapshotStore) RegisterView(userID int64, day string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := userKey(userID)
	if s.state.Views[key] == nil {
		s.state.Views[key] = map[string]int{}
	}
	s.state.Views[key][day]++
	if err := s.saveLocked(); err != nil {
		s.state.Views[key][day]--
		if s.state.Views[key][day] == 0 {
			delete(s.state.Views[key], day)
		}
		if len(s.state.Views[key]) == 0 {
			delete(s.state.Views, key)
		}
		return 0, err
	}
	return s.state.Views[key][day], nil
}

func (s *SnapshotStore) Package(id string) (types.ContentPackage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pkg, ok := s.state.Packages[id]
	if !ok {
		return types.ContentPackage{}, types.ErrPackageNotFound
	}
	return pkg, nil
}

func (s *SnapshotStore) HasPackage(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.state.Packages[id]
	return ok
}

func (s *SnapshotStore) CreatePackage(id string, pkg types.ContentPackage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.state.Packages[id]; exists {
		return fmt.Errorf("package %s already exists", id)
	}
	s.state.Packages[id] = pkg
	if err := s.saveLocked(); err != nil {
		delete(s.state.Packages, id)
		return err
	}
	return nil
}

func (s *SnapshotStore) KnownChats() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int64, len(s.state.Chats))
	copy(out, s.state.Chats)
	return out
}

// AddKnownChat records a broadcast target. Returns false when the chat was
// already known; nothing is persisted in that case.
func (s *SnapshotStore) AddKnownChat(chatID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.state.Chats {
		if id == chatID {
			return false, nil
		}
	}
	s.state.Chats = append(s.state.Chats, chatID)
	if err := s.saveLocked(); err != nil {
		s.state.Chats = s.state.Chats[:len(s.state.Chats)-1]
		return false, err
	}
	return true, nil
}
