// Package cache memoizes completed evaluations so identical resume text is
// not re-analyzed, sparing the external model calls.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/jonathan/resume-evaluator/internal/types"
)

// DefaultTTL is how long a cached evaluation stays valid.
const DefaultTTL = 1 * time.Hour

const cleanupInterval = 10 * time.Minute

// EvaluationCache is an in-memory cache of completed evaluations keyed by a
// digest of the resume text.
type EvaluationCache struct {
	cache *gocache.Cache
}

// New creates an evaluation cache with the given TTL.
func New(ttl time.Duration) *EvaluationCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &EvaluationCache{
		cache: gocache.New(ttl, cleanupInterval),
	}
}

// Key derives the cache key for a resume text.
func Key(resumeText string) string {
	sum := sha256.Sum256([]byte(resumeText))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached evaluation for the resume text, if present.
func (c *EvaluationCache) Get(resumeText string) (*types.Evaluation, bool) {
	if val, found := c.cache.Get(Key(resumeText)); found {
		return val.(*types.Evaluation), true
	}
	return nil, false
}

// Set stores the evaluation for the resume text.
func (c *EvaluationCache) Set(resumeText string, eval *types.Evaluation) {
	c.cache.Set(Key(resumeText), eval, gocache.DefaultExpiration)
}

// Flush drops all cached evaluations.
func (c *EvaluationCache) Flush() {
	c.cache.Flush()
}
