package faucet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEligible(t *testing.T) {
	limiter := NewRateLimiter(time.Hour)
	t0 := time.Now()

	// Fresh requester has no grant on record
	assert.True(t, limiter.Eligible("alice", t0))

	limiter.RecordGrant("alice", t0)

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{
			name: "immediately after grant",
			at:   t0,
			want: false,
		},
		{
			name: "halfway through cooldown",
			at:   t0.Add(30 * time.Minute),
			want: false,
		},
		{
			name: "just before cooldown ends",
			at:   t0.Add(time.Hour - time.Second),
			want: false,
		},
		{
			name: "exactly at cooldown end",
			at:   t0.Add(time.Hour),
			want: true,
		},
		{
			name: "after cooldown",
			at:   t0.Add(61 * time.Minute),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, limiter.Eligible("alice", tt.at))
		})
	}

	// Other requesters are unaffected
	assert.True(t, limiter.Eligible("bob", t0))
}

func TestRecordGrantOverwrites(t *testing.T) {
	limiter := NewRateLimiter(time.Hour)
	t0 := time.Now()

	limiter.RecordGrant("alice", t0)
	limiter.RecordGrant("alice", t0.Add(time.Hour))

	// Latest grant timestamp only, so the window restarts
	assert.False(t, limiter.Eligible("alice", t0.Add(90*time.Minute)))
	assert.True(t, limiter.Eligible("alice", t0.Add(2*time.Hour)))
}

func TestTimeUntilEligible(t *testing.T) {
	limiter := NewRateLimiter(time.Hour)
	t0 := time.Now()

	// No grant on record
	assert.Equal(t, time.Duration(0), limiter.TimeUntilEligible("alice", t0))

	limiter.RecordGrant("alice", t0)

	assert.Equal(t, time.Hour, limiter.TimeUntilEligible("alice", t0))
	assert.Equal(t, time.Minute, limiter.TimeUntilEligible("alice", t0.Add(59*time.Minute)))
	assert.Equal(t, 30*time.Second, limiter.TimeUntilEligible("alice", t0.Add(59*time.Minute+30*time.Second)))

	// Past the window it clamps to zero
	assert.Equal(t, time.Duration(0), limiter.TimeUntilEligible("alice", t0.Add(2*time.Hour)))
}

func TestFormatWait(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{
			name: "seconds under a minute",
			d:    30 * time.Second,
			want: "30 second(s)",
		},
		{
			name: "single minute remaining",
			d:    time.Minute,
			want: "1 minute(s)",
		},
		{
			name: "minutes under an hour",
			d:    45 * time.Minute,
			want: "45 minute(s)",
		},
		{
			name: "rounds to nearest minute",
			d:    44*time.Minute + 40*time.Second,
			want: "45 minute(s)",
		},
		{
			name: "whole hour",
			d:    time.Hour,
			want: "1 hour(s)",
		},
		{
			name: "rounds to nearest hour",
			d:    90 * time.Minute,
			want: "2 hour(s)",
		},
		{
			name: "zero remaining",
			d:    0,
			want: "0 second(s)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatWait(tt.d))
		})
	}
}
