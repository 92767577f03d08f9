package core

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/agenthands/graphite/internal/config"
	"github.com/agenthands/graphite/internal/core/common"
	"github.com/agenthands/graphite/internal/core/equivalence"
	"github.com/agenthands/graphite/internal/core/index"
	"github.com/agenthands/graphite/internal/core/model"
	"github.com/agenthands/graphite/internal/core/xsd"
)

// Snapshot bundles every index built from one graph snapshot, plus the Cache
// the equivalence engine runs against. Built once at the start of a mining
// run, read-only afterwards, dropped when the run ends.
type Snapshot struct {
	Labels     *common.DefaultMap[model.IRI, model.Literal]
	Datatypes  *index.DatatypeIndex
	Types      *index.TypeIndex
	Predicates index.PredicateIndex
	Cache      *equivalence.Cache
}

// BuildIndices constructs all four indexes over the snapshot. Each index is
// an independent scan, so the builds run concurrently; the predicate index is
// additionally sharded per the concurrency config.
func BuildIndices(g *model.Graph, cfg *config.Config) (*Snapshot, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	snap := &Snapshot{}
	var caster *xsd.Caster

	var eg errgroup.Group
	eg.Go(func() error {
		snap.Labels = index.BuildLabelIndex(g, model.IRI(cfg.Vocabulary.LabelPredicate))
		return nil
	})
	eg.Go(func() error {
		snap.Datatypes = index.BuildDatatypeIndex(g)
		return nil
	})
	eg.Go(func() error {
		snap.Types = index.BuildTypeIndex(g,
			model.IRI(cfg.Vocabulary.TypePredicate),
			model.IRI(cfg.Vocabulary.GenericClass))
		return nil
	})
	eg.Go(func() error {
		snap.Predicates = index.BuildPredicateIndexSharded(g, cfg.Concurrency.BuildShards)
		return nil
	})
	eg.Go(func() error {
		c, err := xsd.NewCaster(cfg.Normalization.CacheSize)
		if err != nil {
			return fmt.Errorf("failed to initialize caster: %w", err)
		}
		caster = c
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	snap.Cache = equivalence.NewCache(snap.Types, snap.Datatypes, caster)
	return snap, nil
}

// Support counts the subjects in domain covered by the assertion's predicate.
func (s *Snapshot) Support(assertion model.Assertion, domain index.EntitySet) int {
	return index.Support(s.Predicates, assertion, domain)
}

// IsEquivalent reports whether two assertions are interchangeable under this
// snapshot's type bindings.
func (s *Snapshot) IsEquivalent(a, b model.Assertion) bool {
	return equivalence.IsEquivalent(a, b, s.Cache)
}
