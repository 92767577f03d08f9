package index

import "github.com/agenthands/graphite/internal/core/model"

// Support counts the subjects in domain that have at least one outgoing edge
// via the assertion's predicate: the cardinality of the intersection between
// domain and the forward keys of the predicate entry. Neither the domain nor
// the index is modified. Returns 0 for a predicate never observed.
func Support(idx PredicateIndex, assertion model.Assertion, domain EntitySet) int {
	entry, ok := idx[assertion.Predicate]
	if !ok {
		return 0
	}

	count := 0
	for subject := range domain {
		if entry.Forwards.Has(subject) {
			count++
		}
	}
	return count
}
