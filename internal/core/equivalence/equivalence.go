// Package equivalence decides whether two candidate assertions are
// interchangeable under the current type bindings. It is the component the
// pattern search queries at the highest volume, so every check is a handful
// of map lookups against snapshot-scoped, read-only indexes.
package equivalence

import (
	"github.com/agenthands/graphite/internal/core/index"
	"github.com/agenthands/graphite/internal/core/model"
	"github.com/agenthands/graphite/internal/core/xsd"
)

// Cache bundles the indexes equivalence checks run against. It is built once
// per snapshot and shared read-only across all comparisons in a run; checks
// may be issued concurrently from many search goroutines.
type Cache struct {
	Types     *index.TypeIndex
	Datatypes *index.DatatypeIndex
	Caster    *xsd.Caster
}

func NewCache(types *index.TypeIndex, datatypes *index.DatatypeIndex, caster *xsd.Caster) *Cache {
	return &Cache{Types: types, Datatypes: datatypes, Caster: caster}
}

// IsEquivalent reports whether two assertions are interchangeable.
//
// Both left-hand sides must be ObjectTypeVariables of the same type and both
// predicates identical; equivalence is only ever checked between assertions
// sharing the same typed subject variable. The right-hand sides then match
// when they are the same resource, concrete literals with the same canonical
// value, type variables of the same type, or one is a concrete instance of
// the other's variable type.
func IsEquivalent(a, b model.Assertion, cache *Cache) bool {
	lhsA, okA := a.LHS.(model.ObjectTypeVariable)
	lhsB, okB := b.LHS.(model.ObjectTypeVariable)
	if !okA || !okB || lhsA.Type != lhsB.Type || a.Predicate != b.Predicate {
		return false
	}

	if a.RHS == b.RHS {
		return true
	}
	if sameCanonicalLiteral(a.RHS, b.RHS, cache) {
		return true
	}
	if varA, ok := a.RHS.(model.TypeVariable); ok {
		if varB, ok := b.RHS.(model.TypeVariable); ok && varA.VarType() == varB.VarType() {
			return true
		}
	}

	// isSameType bridges one variable side against one concrete side, so it
	// must be probed in both orientations.
	return isSameType(a.RHS, b.RHS, cache) || isSameType(b.RHS, a.RHS, cache)
}

// isSameType reports whether concrete b is an instance of variable a's
// declared type. Asymmetric: a must be a variable and b a concrete resource
// recorded in the matching index.
func isSameType(a, b model.Node, cache *Cache) bool {
	switch v := a.(type) {
	case model.ObjectTypeVariable:
		entity, ok := b.(model.IRI)
		if !ok || !cache.Types.ObjectToType.Has(entity) {
			return false
		}
		_, ok = cache.Types.ObjectToType.Get(entity)[v.Type]
		return ok

	case model.DataTypeVariable:
		return literalHasType(b, v.Type, cache)

	case model.MultiModalNode:
		return literalHasType(b, v.Type, cache)
	}

	return false
}

func literalHasType(b model.Node, dtype model.IRI, cache *Cache) bool {
	lit, ok := b.(model.Literal)
	if !ok || !cache.Datatypes.ObjectToType.Has(lit) {
		return false
	}
	return cache.Datatypes.ObjectToType.Get(lit) == dtype
}

// sameCanonicalLiteral compares two concrete literals through the caster, so
// that e.g. "Alice" and "ALICE" tagged xsd:string compare equal. Literals
// whose datatypes canonicalize into different value spaces sit in different
// datatype buckets and are never equivalent, even when their canonical forms
// happen to coincide.
func sameCanonicalLiteral(a, b model.Node, cache *Cache) bool {
	litA, ok := a.(model.Literal)
	if !ok {
		return false
	}
	litB, ok := b.(model.Literal)
	if !ok {
		return false
	}

	if !xsd.SameValueSpace(xsd.DatatypeOf(litA), xsd.DatatypeOf(litB)) {
		return false
	}
	return cache.Caster.Canonical(litA) == cache.Caster.Canonical(litB)
}
