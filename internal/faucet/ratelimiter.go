package faucet

import (
	"fmt"
	"sync"
	"time"
)

// RateLimiter tracks the last successful grant per requester and
// decides whether a new grant is admissible. State is an owned
// in-memory table that lives for the process lifetime; entries are
// only ever overwritten, never removed.
//
// Discord delivers messages for a channel sequentially, so the
// check-then-record sequence in the send handler cannot interleave for
// one requester. The mutex keeps each method atomic regardless, so a
// transport with concurrent delivery does not corrupt the table.
type RateLimiter struct {
	mu       sync.Mutex
	cooldown time.Duration
	grants   map[string]time.Time
}

// NewRateLimiter creates a rate limiter with the given cooldown window
func NewRateLimiter(cooldown time.Duration) *RateLimiter {
	return &RateLimiter{
		cooldown: cooldown,
		grants:   make(map[string]time.Time),
	}
}

// Eligible reports whether the requester may receive a grant at the
// given instant: true if no grant is on record, or the last grant is
// at least one cooldown window old.
func (r *RateLimiter) Eligible(id string, now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	last, ok := r.grants[id]
	if !ok {
		return true
	}
	return now.Sub(last) >= r.cooldown
}

// RecordGrant sets or overwrites the requester's last-grant timestamp.
// Call it only once a request has been admitted.
func (r *RateLimiter) RecordGrant(id string, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.grants[id] = now
}

// TimeUntilEligible returns the remaining cooldown for the requester,
// or zero if the requester is already eligible.
func (r *RateLimiter) TimeUntilEligible(id string, now time.Time) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	last, ok := r.grants[id]
	if !ok {
		return 0
	}

	remaining := last.Add(r.cooldown).Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// FormatWait renders a remaining wait for human display using the
// largest unit that keeps the value at one or more: seconds under a
// minute, minutes under an hour, hours otherwise. Values are rounded
// to the nearest whole unit.
func FormatWait(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%d second(s)", int(d.Round(time.Second)/time.Second))
	}
	if d < time.Hour {
		return fmt.Sprintf("%d minute(s)", int(d.Round(time.Minute)/time.Minute))
	}
	return fmt.Sprintf("%d hour(s)", int(d.Round(time.Hour)/time.Hour))
}
