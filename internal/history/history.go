package history

import (
	"context"
	"sync"
	"time"
)

// Entry is the per-question recommendation-fatigue record. It is the only
// pipeline state that survives between runs: created the first time a
// question is recommended, refreshed on every subsequent recommendation,
// never deleted automatically.
type Entry struct {
	LastRecommendedAt time.Time
	TimesRecommended  int

	// BoostGranted records that the one-time repeat boost has been applied
	// for this question; it is never re-applied while this is set.
	BoostGranted bool
}

// Repo persists recommendation history per user.
type Repo interface {
	// Load returns the full history map for a user, keyed by question ID.
	// A user with no history yields an empty map, not an error.
	Load(ctx context.Context, userID string) (map[string]Entry, error)

	// Save replaces the stored history for a user.
	Save(ctx context.Context, userID string, entries map[string]Entry) error
}

// Locker serializes history read-modify-write cycles per user. Concurrent
// runs for the same user contend on the same mutex; runs for different
// users never block each other.
type Locker struct {
	mu    sync.Mutex
	users map[string]*sync.Mutex
}

// NewLocker creates an empty Locker.
func NewLocker() *Locker {
	return &Locker{users: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for userID, creating it on first use.
func (l *Locker) Lock(userID string) {
	l.userMutex(userID).Lock()
}

// Unlock releases the mutex for userID.
func (l *Locker) Unlock(userID string) {
	l.userMutex(userID).Unlock()
}

func (l *Locker) userMutex(userID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.users[userID]
	if !ok {
		m = &sync.Mutex{}
		l.users[userID] = m
	}
	return m
}
