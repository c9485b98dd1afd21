//go:build unit

package clock_test

import (
	"testing"
	"time"

	"gearshare/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	at := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	c := clock.Fixed(at)

	assert.Equal(t, at, c.Now())
	assert.Equal(t, at, c.Now(), "repeated reads stay frozen")
}

func TestRealClock(t *testing.T) {
	before := time.Now()
	now := clock.NewRealClock().Now()
	assert.False(t, now.Before(before))
}
