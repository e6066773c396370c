package quiz

import (
	"sort"
	"sync"
)

// Leaderboard maps usernames to their best score within the process
// lifetime. Nothing is persisted. Safe for concurrent use by disjoint
// sessions.
type Leaderboard struct {
	mu   sync.Mutex
	best map[string]int
}

// Entry is one leaderboard row.
type Entry struct {
	Username string
	Score    int
}

// NewLeaderboard creates an empty leaderboard.
func NewLeaderboard() *Leaderboard {
	return &Leaderboard{best: make(map[string]int)}
}

// Record updates the stored best for username if score beats it.
// Returns true when the entry was created or improved.
func (lb *Leaderboard) Record(username string, score int) bool {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	prev, ok := lb.best[username]
	if ok && score <= prev {
		return false
	}
	lb.best[username] = score
	return true
}

// Best returns the stored best score for username.
func (lb *Leaderboard) Best(username string) (int, bool) {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	score, ok := lb.best[username]
	return score, ok
}

// Top returns up to n entries ordered by score descending, ties broken
// by username. n <= 0 returns all entries.
func (lb *Leaderboard) Top(n int) []Entry {
	lb.mu.Lock()
	entries := make([]Entry, 0, len(lb.best))
	for name, score := range lb.best {
		entries = append(entries, Entry{Username: name, Score: score})
	}
	lb.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Username < entries[j].Username
	})

	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
