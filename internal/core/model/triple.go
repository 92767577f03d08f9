package model

// Triple is a single (subject, predicate, object) fact.
type Triple struct {
	Subject   IRI
	Predicate IRI
	Object    Node
}

// Graph is a snapshot of triples. It is populated during loading and treated
// as immutable once index construction starts; indexes built from it can then
// be queried concurrently without locking.
type Graph struct {
	triples []Triple
}

func NewGraph(triples ...Triple) *Graph {
	return &Graph{triples: triples}
}

func (g *Graph) Add(s, p IRI, o Node) {
	g.triples = append(g.triples, Triple{Subject: s, Predicate: p, Object: o})
}

func (g *Graph) Len() int {
	return len(g.triples)
}

// Triples returns the underlying triple slice. Callers must not modify it.
func (g *Graph) Triples() []Triple {
	return g.triples
}

// Objects returns the objects a subject reaches via a predicate, in triple
// order. Index builders scan Triples directly; this is the point-lookup
// companion for callers holding only a snapshot.
func (g *Graph) Objects(s, p IRI) []Node {
	var objects []Node
	for _, t := range g.triples {
		if t.Subject == s && t.Predicate == p {
			objects = append(objects, t.Object)
		}
	}
	return objects
}
