package xsd

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/agenthands/graphite/internal/core/model"
)

// DefaultCacheSize bounds the caster memo when no size is configured.
const DefaultCacheSize = 4096

type castKey struct {
	value string
	dtype model.IRI
}

// Caster memoizes Cast results. The mining search revisits the same literals
// constantly, so parsing each (value, datatype) pair once is enough. Safe for
// concurrent use.
type Caster struct {
	cache *lru.Cache[castKey, any]
}

func NewCaster(size int) (*Caster, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[castKey, any](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create cast cache: %w", err)
	}
	return &Caster{cache: cache}, nil
}

// Cast is the memoized equivalent of the package-level Cast. Non-string
// values are already canonical and bypass the cache.
func (c *Caster) Cast(value any, dtype model.IRI) any {
	s, ok := value.(string)
	if !ok {
		return Cast(value, dtype)
	}

	key := castKey{value: s, dtype: dtype}
	if cached, ok := c.cache.Get(key); ok {
		return cached
	}

	out := Cast(value, dtype)
	c.cache.Add(key, out)
	return out
}

// Canonical returns the comparable canonical form of a literal, resolving
// its datatype the same way index construction does.
func (c *Caster) Canonical(l model.Literal) any {
	return c.Cast(l.Value, DatatypeOf(l))
}
