package index

import (
	"sync"

	"github.com/agenthands/graphite/internal/core/common"
	"github.com/agenthands/graphite/internal/core/model"
)

// PredicateEntry holds the two adjacency directions of one predicate. For
// every triple (s,p,o) the entry for p satisfies o ∈ Forwards[s] and
// s ∈ Backwards[o]; the directions are always kept consistent.
type PredicateEntry struct {
	// Forwards maps a subject to the set of objects it reaches via this
	// predicate. Unknown subjects resolve to a nil (empty) set.
	Forwards *common.DefaultMap[model.IRI, NodeSet]

	// Backwards maps an object to the set of subjects reaching it.
	Backwards *common.DefaultMap[model.Node, EntitySet]
}

func newPredicateEntry() *PredicateEntry {
	return &PredicateEntry{
		Forwards:  common.NewDefaultMap[model.IRI](NodeSet(nil)),
		Backwards: common.NewDefaultMap[model.Node](EntitySet(nil)),
	}
}

// PredicateIndex maps each predicate to its adjacency entry.
type PredicateIndex map[model.IRI]*PredicateEntry

// BuildPredicateIndex builds the per-predicate forward and backward
// adjacency sets in a single linear scan. A forward or backward lookup
// afterwards is O(1) on average.
func BuildPredicateIndex(g *model.Graph) PredicateIndex {
	idx := make(PredicateIndex)
	for _, t := range g.Triples() {
		idx.add(t)
	}
	return idx
}

func (idx PredicateIndex) add(t model.Triple) {
	entry, ok := idx[t.Predicate]
	if !ok {
		entry = newPredicateEntry()
		idx[t.Predicate] = entry
	}

	objects := entry.Forwards.Get(t.Subject)
	if objects == nil {
		objects = make(NodeSet)
		entry.Forwards.Set(t.Subject, objects)
	}
	objects[t.Object] = struct{}{}

	subjects := entry.Backwards.Get(t.Object)
	if subjects == nil {
		subjects = make(EntitySet)
		entry.Backwards.Set(t.Object, subjects)
	}
	subjects[t.Subject] = struct{}{}
}

// merge unions another partial index into this one.
func (idx PredicateIndex) merge(other PredicateIndex) {
	for predicate, entry := range other {
		for _, s := range entry.Forwards.Keys() {
			for o := range entry.Forwards.Get(s) {
				idx.add(model.Triple{Subject: s, Predicate: predicate, Object: o})
			}
		}
	}
}

// BuildPredicateIndexSharded splits the snapshot across workers, builds
// per-shard partial indexes and union-merges them. Union merge is commutative
// and associative, so the result matches the sequential build regardless of
// triple order. Falls back to the sequential build for small inputs.
func BuildPredicateIndexSharded(g *model.Graph, shards int) PredicateIndex {
	triples := g.Triples()
	if shards <= 1 || len(triples) < shards {
		return BuildPredicateIndex(g)
	}

	parts := make([]PredicateIndex, shards)
	chunk := (len(triples) + shards - 1) / shards

	var wg sync.WaitGroup
	for i := 0; i < shards; i++ {
		lo := min(i*chunk, len(triples))
		hi := min(lo+chunk, len(triples))

		wg.Add(1)
		go func(i, lo, hi int) {
			defer wg.Done()
			part := make(PredicateIndex)
			for _, t := range triples[lo:hi] {
				part.add(t)
			}
			parts[i] = part
		}(i, lo, hi)
	}
	wg.Wait()

	merged := parts[0]
	for _, part := range parts[1:] {
		merged.merge(part)
	}
	return merged
}
