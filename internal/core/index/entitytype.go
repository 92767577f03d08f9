package index

import (
	"github.com/agenthands/graphite/internal/core/common"
	"github.com/agenthands/graphite/internal/core/model"
)

// TypeIndex is the bidirectional entity/class mapping. Unlike the datatype
// index this is many-to-many: an entity may belong to several classes and a
// class has many members.
type TypeIndex struct {
	// ObjectToType maps an entity to the set of classes it belongs to.
	// Unknown entities resolve to a nil (empty) set.
	ObjectToType *common.DefaultMap[model.IRI, ClassSet]

	// TypeToObject maps a class to the set of its member entities.
	TypeToObject *common.DefaultMap[model.IRI, EntitySet]
}

// BuildTypeIndex collects the asserted classes of every distinct subject.
// A subject with no type assertion is a member of exactly the generic class,
// so every subject has at least one class.
func BuildTypeIndex(g *model.Graph, typePredicate, genericClass model.IRI) *TypeIndex {
	idx := &TypeIndex{
		ObjectToType: common.NewDefaultMap[model.IRI](ClassSet(nil)),
		TypeToObject: common.NewDefaultMap[model.IRI](EntitySet(nil)),
	}

	subjects := make([]model.IRI, 0)
	seen := make(map[model.IRI]struct{})
	asserted := make(map[model.IRI]ClassSet)

	for _, t := range g.Triples() {
		if _, ok := seen[t.Subject]; !ok {
			seen[t.Subject] = struct{}{}
			subjects = append(subjects, t.Subject)
		}
		if t.Predicate != typePredicate {
			continue
		}
		if class, ok := t.Object.(model.IRI); ok {
			if asserted[t.Subject] == nil {
				asserted[t.Subject] = make(ClassSet)
			}
			asserted[t.Subject][class] = struct{}{}
		}
	}

	for _, e := range subjects {
		classes := asserted[e]
		if len(classes) == 0 {
			classes = ClassSet{genericClass: {}}
		}
		idx.ObjectToType.Set(e, classes)

		for class := range classes {
			members := idx.TypeToObject.Get(class)
			if members == nil {
				members = make(EntitySet)
				idx.TypeToObject.Set(class, members)
			}
			members[e] = struct{}{}
		}
	}

	return idx
}
