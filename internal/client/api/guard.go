package api

import (
	"sync"
	"time"
)

// DefaultUnauthorizedCooldown is the window during which repeated 401
// responses collapse into a single unauthorized notification. A page worth
// of parallel fetches failing together must not tear the session down once
// per request.
const DefaultUnauthorizedCooldown = time.Second

// UnauthorizedGuard rate-limits the reaction to 401 responses. The time
// source is injectable for deterministic tests.
type UnauthorizedGuard struct {
	mu       sync.Mutex
	cooldown time.Duration
	last     time.Time
	now      func() time.Time
	notify   func()
}

// NewUnauthorizedGuard returns a guard that invokes notify at most once per
// cooldown window. A nil notify makes Trip a pure rate-limit check.
func NewUnauthorizedGuard(cooldown time.Duration, notify func()) *UnauthorizedGuard {
	if cooldown <= 0 {
		cooldown = DefaultUnauthorizedCooldown
	}
	return &UnauthorizedGuard{cooldown: cooldown, now: time.Now, notify: notify}
}

// SetClock replaces the guard's time source. Intended for tests.
func (g *UnauthorizedGuard) SetClock(now func() time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.now = now
}

// Trip records a 401. It returns true and fires the notification when the
// cooldown window has elapsed since the previous accepted trip; otherwise
// it is a no-op returning false.
func (g *UnauthorizedGuard) Trip() bool {
	g.mu.Lock()
	now := g.now()
	if !g.last.IsZero() && now.Sub(g.last) < g.cooldown {
		g.mu.Unlock()
		return false
	}
	g.last = now
	notify := g.notify
	g.mu.Unlock()

	if notify != nil {
		notify()
	}
	return true
}
