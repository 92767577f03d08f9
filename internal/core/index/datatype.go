package index

import (
	"github.com/agenthands/graphite/internal/core/common"
	"github.com/agenthands/graphite/internal/core/model"
	"github.com/agenthands/graphite/internal/core/xsd"
)

// DatatypeIndex is the bidirectional literal/datatype mapping. Datatype
// assignment is a function: every literal observed as an object sits in
// exactly one bucket.
type DatatypeIndex struct {
	// ObjectToType maps a literal to its datatype. Unknown literals resolve
	// to the zero IRI.
	ObjectToType *common.DefaultMap[model.Literal, model.IRI]

	// TypeToObject maps a datatype to the set of literals carrying it.
	// Unknown datatypes resolve to a nil (empty) set.
	TypeToObject *common.DefaultMap[model.IRI, LiteralSet]
}

// BuildDatatypeIndex scans every literal appearing as an object. The datatype
// is the explicit tag when present, xsd:string for plain literals with a
// language tag, xsd:anyType otherwise.
func BuildDatatypeIndex(g *model.Graph) *DatatypeIndex {
	idx := &DatatypeIndex{
		ObjectToType: common.NewDefaultMap[model.Literal](model.IRI("")),
		TypeToObject: common.NewDefaultMap[model.IRI](LiteralSet(nil)),
	}

	for _, t := range g.Triples() {
		lit, ok := t.Object.(model.Literal)
		if !ok {
			continue
		}
		if idx.ObjectToType.Has(lit) {
			continue
		}

		dtype := xsd.DatatypeOf(lit)

		bucket := idx.TypeToObject.Get(dtype)
		if bucket == nil {
			bucket = make(LiteralSet)
			idx.TypeToObject.Set(dtype, bucket)
		}
		bucket[lit] = struct{}{}
		idx.ObjectToType.Set(lit, dtype)
	}

	return idx
}
