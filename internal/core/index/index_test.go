package index

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agenthands/graphite/internal/core/model"
	"github.com/agenthands/graphite/internal/core/xsd"
)

func iri(name string) model.IRI {
	return model.IRI("http://example.org/" + name)
}

func TestBuildLabelIndex(t *testing.T) {
	g := model.NewGraph()
	g.Add(iri("alice"), model.RDFSLabel, model.Literal{Value: "Alice", Lang: "en"})
	g.Add(iri("bob"), model.RDFSLabel, model.Literal{Value: "Bob"})
	g.Add(iri("bob"), iri("hasName"), model.Literal{Value: "Robert"}) // wrong predicate

	labels := BuildLabelIndex(g, model.RDFSLabel)

	assert.Equal(t, "Alice", labels.Get(iri("alice")).Value)
	assert.Equal(t, "Bob", labels.Get(iri("bob")).Value)

	// Unlabeled entities resolve to the empty label without being stored.
	assert.Equal(t, "", labels.Get(iri("carol")).Value)
	assert.False(t, labels.Has(iri("carol")))
	assert.Equal(t, 2, labels.Len())
}

func TestBuildLabelIndex_LastWriteWins(t *testing.T) {
	g := model.NewGraph()
	g.Add(iri("alice"), model.RDFSLabel, model.Literal{Value: "Alice"})
	g.Add(iri("alice"), model.RDFSLabel, model.Literal{Value: "Alicia"})

	labels := BuildLabelIndex(g, model.RDFSLabel)
	assert.Equal(t, "Alicia", labels.Get(iri("alice")).Value)
}

func TestBuildDatatypeIndex(t *testing.T) {
	age := model.Literal{Value: "23", Datatype: xsd.Integer}
	greeting := model.Literal{Value: "hello", Lang: "en"} // plain + lang -> xsd:string
	opaque := model.Literal{Value: "???"}                 // no tag at all -> xsd:anyType

	g := model.NewGraph()
	g.Add(iri("alice"), iri("age"), age)
	g.Add(iri("alice"), iri("greets"), greeting)
	g.Add(iri("alice"), iri("says"), opaque)
	g.Add(iri("alice"), iri("knows"), iri("bob")) // entity object, ignored

	idx := BuildDatatypeIndex(g)

	assert.Equal(t, xsd.Integer, idx.ObjectToType.Get(age))
	assert.Equal(t, xsd.String, idx.ObjectToType.Get(greeting))
	assert.Equal(t, xsd.AnyType, idx.ObjectToType.Get(opaque))

	assert.Contains(t, idx.TypeToObject.Get(xsd.Integer), age)
	assert.Contains(t, idx.TypeToObject.Get(xsd.String), greeting)
	assert.Contains(t, idx.TypeToObject.Get(xsd.AnyType), opaque)

	// Unknown lookups resolve to the defaults.
	assert.Equal(t, model.IRI(""), idx.ObjectToType.Get(model.Literal{Value: "absent"}))
	assert.Empty(t, idx.TypeToObject.Get(xsd.Boolean))
}

func TestBuildDatatypeIndex_SingleBucket(t *testing.T) {
	// The same literal observed many times lands in exactly one bucket.
	age := model.Literal{Value: "23", Datatype: xsd.Integer}

	g := model.NewGraph()
	g.Add(iri("alice"), iri("age"), age)
	g.Add(iri("bob"), iri("age"), age)

	idx := BuildDatatypeIndex(g)

	assert.Equal(t, 1, idx.ObjectToType.Len())
	assert.Len(t, idx.TypeToObject.Get(xsd.Integer), 1)
}

func TestBuildTypeIndex(t *testing.T) {
	g := model.NewGraph()
	g.Add(iri("e1"), model.RDFType, iri("Student"))
	g.Add(iri("e1"), model.RDFType, iri("Person"))
	g.Add(iri("e2"), iri("knows"), iri("e1")) // subject with no asserted type

	idx := BuildTypeIndex(g, model.RDFType, model.RDFSClass)

	// e1 carries both classes, each bucket contains e1.
	classes := idx.ObjectToType.Get(iri("e1"))
	assert.Len(t, classes, 2)
	assert.Contains(t, classes, iri("Student"))
	assert.Contains(t, classes, iri("Person"))
	assert.Contains(t, idx.TypeToObject.Get(iri("Student")), iri("e1"))
	assert.Contains(t, idx.TypeToObject.Get(iri("Person")), iri("e1"))

	// e2 gets exactly the generic class.
	classes = idx.ObjectToType.Get(iri("e2"))
	assert.Len(t, classes, 1)
	assert.Contains(t, classes, model.RDFSClass)
	assert.Contains(t, idx.TypeToObject.Get(model.RDFSClass), iri("e2"))

	// Entities never observed as subjects resolve to the empty set.
	assert.Empty(t, idx.ObjectToType.Get(iri("ghost")))
	assert.False(t, idx.ObjectToType.Has(iri("ghost")))
}

func TestBuildPredicateIndex_ForwardBackwardConsistency(t *testing.T) {
	g := model.NewGraph()
	g.Add(iri("a"), iri("p"), iri("b"))
	g.Add(iri("a"), iri("p"), iri("c"))
	g.Add(iri("d"), iri("p"), iri("b"))
	g.Add(iri("a"), iri("q"), model.Literal{Value: "x"})

	idx := BuildPredicateIndex(g)

	// Every triple (s,p,o): o in forwards[p][s] and s in backwards[p][o].
	for _, tr := range g.Triples() {
		entry := idx[tr.Predicate]
		assert.NotNil(t, entry)
		assert.Contains(t, entry.Forwards.Get(tr.Subject), tr.Object)
		assert.Contains(t, entry.Backwards.Get(tr.Object), tr.Subject)
	}

	p := idx[iri("p")]
	assert.Len(t, p.Forwards.Get(iri("a")), 2)
	assert.Len(t, p.Backwards.Get(model.Node(iri("b"))), 2)

	// Misses resolve to empty sets.
	assert.Empty(t, p.Forwards.Get(iri("zzz")))
	assert.Nil(t, idx[iri("absent")])
}

func TestBuildPredicateIndexSharded_MatchesSequential(t *testing.T) {
	g := model.NewGraph()
	for i := 0; i < 8; i++ {
		s := iri(string(rune('a' + i)))
		g.Add(s, iri("p"), iri("hub"))
		g.Add(s, iri("q"), model.Literal{Value: s.String()})
		g.Add(iri("hub"), iri("p"), s)
	}

	sequential := BuildPredicateIndex(g)
	sharded := BuildPredicateIndexSharded(g, 4)

	assert.Len(t, sharded, len(sequential))
	for predicate, want := range sequential {
		got := sharded[predicate]
		assert.NotNil(t, got, "missing predicate %s", predicate)

		assert.ElementsMatch(t, want.Forwards.Keys(), got.Forwards.Keys())
		for _, s := range want.Forwards.Keys() {
			assert.Equal(t, want.Forwards.Get(s), got.Forwards.Get(s))
		}
		assert.ElementsMatch(t, want.Backwards.Keys(), got.Backwards.Keys())
		for _, o := range want.Backwards.Keys() {
			assert.Equal(t, want.Backwards.Get(o), got.Backwards.Get(o))
		}
	}
}

func TestBuildPredicateIndexSharded_SmallInputFallsBack(t *testing.T) {
	g := model.NewGraph()
	g.Add(iri("a"), iri("p"), iri("b"))

	idx := BuildPredicateIndexSharded(g, 8)
	assert.Contains(t, idx[iri("p")].Forwards.Get(iri("a")), model.Node(iri("b")))
}
