package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUnauthorizedGuard_CollapsesBurst(t *testing.T) {
	var fired int
	g := NewUnauthorizedGuard(time.Second, func() { fired++ })

	base := time.Now()
	g.SetClock(func() time.Time { return base })

	assert.True(t, g.Trip())
	assert.False(t, g.Trip())
	assert.False(t, g.Trip())
	assert.Equal(t, 1, fired)
}

func TestUnauthorizedGuard_ReArmsAfterCooldown(t *testing.T) {
	var fired int
	g := NewUnauthorizedGuard(time.Second, func() { fired++ })

	now := time.Now()
	g.SetClock(func() time.Time { return now })

	assert.True(t, g.Trip())

	now = now.Add(999 * time.Millisecond)
	assert.False(t, g.Trip())

	now = now.Add(2 * time.Millisecond)
	assert.True(t, g.Trip())
	assert.Equal(t, 2, fired)
}

func TestUnauthorizedGuard_NilNotify(t *testing.T) {
	g := NewUnauthorizedGuard(time.Second, nil)
	assert.True(t, g.Trip())
	assert.False(t, g.Trip())
}

func TestUnauthorizedGuard_ZeroCooldownUsesDefault(t *testing.T) {
	g := NewUnauthorizedGuard(0, nil)
	assert.Equal(t, DefaultUnauthorizedCooldown, g.cooldown)
}
