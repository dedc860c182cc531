package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoffDoublesUpToCap(t *testing.T) {
	t.Parallel()

	b := Backoff{Min: 10 * time.Second, Max: 60 * time.Second}

	assert.Equal(t, 10*time.Second, b.Next())
	assert.Equal(t, 20*time.Second, b.Next())
	assert.Equal(t, 40*time.Second, b.Next())
	assert.Equal(t, 60*time.Second, b.Next())
	assert.Equal(t, 60*time.Second, b.Next())
}

func TestBackoffResetStartsOver(t *testing.T) {
	t.Parallel()

	b := Backoff{Min: 10 * time.Second, Max: 60 * time.Second}

	b.Next()
	b.Next()
	b.Reset()

	assert.Equal(t, 10*time.Second, b.Next())
}

func TestBackoffZeroValueUsesDefaults(t *testing.T) {
	t.Parallel()

	var b Backoff

	first := b.Next()
	assert.Equal(t, defaultCooldownMin, first)
}
