package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-evaluator/internal/types"
)

func TestKey_StableAndDistinct(t *testing.T) {
	assert.Equal(t, Key("resume text"), Key("resume text"))
	assert.NotEqual(t, Key("resume text"), Key("resume text "))
	assert.Len(t, Key("anything"), 64)
}

func TestCache_SetGet(t *testing.T) {
	c := New(time.Minute)
	eval := &types.Evaluation{StandardScore: 80, FinalScore: 80}

	c.Set("resume text", eval)

	got, found := c.Get("resume text")
	require.True(t, found)
	assert.Same(t, eval, got)
}

func TestCache_Miss(t *testing.T) {
	c := New(time.Minute)

	_, found := c.Get("never stored")
	assert.False(t, found)
}

func TestCache_Expiry(t *testing.T) {
	c := New(10 * time.Millisecond)
	c.Set("resume text", &types.Evaluation{FinalScore: 70})

	time.Sleep(30 * time.Millisecond)

	_, found := c.Get("resume text")
	assert.False(t, found)
}

func TestCache_Flush(t *testing.T) {
	c := New(time.Minute)
	c.Set("resume text", &types.Evaluation{FinalScore: 70})

	c.Flush()

	_, found := c.Get("resume text")
	assert.False(t, found)
}

func TestCache_ZeroTTLUsesDefault(t *testing.T) {
	c := New(0)
	c.Set("resume text", &types.Evaluation{FinalScore: 70})

	_, found := c.Get("resume text")
	assert.True(t, found)
}
