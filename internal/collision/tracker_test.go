package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObserveNoCollisionOnFirstSight(t *testing.T) {
	tr := NewTracker()
	assert.False(t, tr.Observe(1, "a"))
	assert.False(t, tr.HasCollision())
}

func TestObserveSameKeyIsNotACollision(t *testing.T) {
	tr := NewTracker()
	assert.False(t, tr.Observe(1, "a"))
	assert.False(t, tr.Observe(1, "a"))
	assert.False(t, tr.HasCollision())
}

func TestObserveDifferentKeySameHashIsACollision(t *testing.T) {
	tr := NewTracker()
	assert.False(t, tr.Observe(1, "a"))
	assert.True(t, tr.Observe(1, "b"))
	assert.True(t, tr.HasCollision())
}

func TestReset(t *testing.T) {
	tr := NewTracker()
	tr.Observe(1, "a")
	tr.Observe(1, "b")
	require := assert.New(t)
	require.True(tr.HasCollision())

	tr.Reset()
	require.False(tr.HasCollision())
	require.False(tr.Observe(1, "b"))
}
