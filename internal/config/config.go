package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/agenthands/graphite/internal/core/model"
	"github.com/agenthands/graphite/internal/core/xsd"
)

type VocabularyConfig struct {
	LabelPredicate string `toml:"label_predicate"`
	TypePredicate  string `toml:"type_predicate"`
	GenericClass   string `toml:"generic_class"`
}

type ConcurrencyConfig struct {
	BuildShards int `toml:"build_shards"`
}

type NormalizationConfig struct {
	CacheSize int `toml:"cache_size"`
}

type Config struct {
	Vocabulary    VocabularyConfig    `toml:"vocabulary"`
	Concurrency   ConcurrencyConfig   `toml:"concurrency"`
	Normalization NormalizationConfig `toml:"normalization"`
}

// Default returns the standard rdf/rdfs vocabulary with a sequential build.
func Default() *Config {
	return &Config{
		Vocabulary: VocabularyConfig{
			LabelPredicate: string(model.RDFSLabel),
			TypePredicate:  string(model.RDFType),
			GenericClass:   string(model.RDFSClass),
		},
		Concurrency: ConcurrencyConfig{
			BuildShards: 1,
		},
		Normalization: NormalizationConfig{
			CacheSize: xsd.DefaultCacheSize,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	// A partial file keeps the defaults for anything it left out.
	if cfg.Vocabulary.LabelPredicate == "" {
		cfg.Vocabulary.LabelPredicate = string(model.RDFSLabel)
	}
	if cfg.Vocabulary.TypePredicate == "" {
		cfg.Vocabulary.TypePredicate = string(model.RDFType)
	}
	if cfg.Vocabulary.GenericClass == "" {
		cfg.Vocabulary.GenericClass = string(model.RDFSClass)
	}

	return cfg, nil
}
