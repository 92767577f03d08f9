// Package index builds the four read-only index structures a mining run
// queries: label, literal-datatype, entity-type and predicate adjacency.
// Construction is a single pass over an immutable triple snapshot; once
// built, indexes are shared across search goroutines without locking.
package index

import "github.com/agenthands/graphite/internal/core/model"

type NodeSet map[model.Node]struct{}

type EntitySet map[model.IRI]struct{}

type ClassSet map[model.IRI]struct{}

type LiteralSet map[model.Literal]struct{}
