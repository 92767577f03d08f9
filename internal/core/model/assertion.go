package model

// Assertion is a triple pattern compared during mining: an ordered
// (lhs, predicate, rhs) where lhs and rhs are each a concrete resource or a
// type variable. Assertions are immutable value objects.
type Assertion struct {
	LHS       Node
	Predicate IRI
	RHS       Node
}

func NewAssertion(lhs Node, predicate IRI, rhs Node) Assertion {
	return Assertion{LHS: lhs, Predicate: predicate, RHS: rhs}
}
