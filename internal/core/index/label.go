package index

import (
	"github.com/agenthands/graphite/internal/core/common"
	"github.com/agenthands/graphite/internal/core/model"
)

// BuildLabelIndex maps each labeled entity to its display label. Entities
// without a label resolve to the zero Literal (empty string). If an entity
// carries several labels the last one scanned wins; no ordering is
// guaranteed among duplicates.
func BuildLabelIndex(g *model.Graph, labelPredicate model.IRI) *common.DefaultMap[model.IRI, model.Literal] {
	labels := common.NewDefaultMap[model.IRI](model.Literal{})

	for _, t := range g.Triples() {
		if t.Predicate != labelPredicate {
			continue
		}
		if lit, ok := t.Object.(model.Literal); ok {
			labels.Set(t.Subject, lit)
		}
	}

	return labels
}
