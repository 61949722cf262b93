package splitter

import (
	"fmt"
	"sort"

	"sentsplit/internal/config"
	"sentsplit/internal/domain"
	"sentsplit/internal/port"
)

// EngineFactory builds a SentenceSplitter from splitter config.
type EngineFactory func(cfg *config.SplitterConfig) (port.SentenceSplitter, error)

// registry of engine factories, populated by init() below or explicitly via
// RegisterEngine.
var engines = map[string]EngineFactory{}

func init() {
	RegisterEngine(string(domain.EngineRegex), func(*config.SplitterConfig) (port.SentenceSplitter, error) {
		return NewRegexSplitter(), nil
	})
	RegisterEngine(string(domain.EnginePunkt), func(cfg *config.SplitterConfig) (port.SentenceSplitter, error) {
		return NewPunktSplitter(cfg.PunktTrainingPath, cfg.PunktTrainingURL), nil
	})
}

// RegisterEngine registers an engine factory by name.
func RegisterEngine(name string, factory EngineFactory) {
	engines[name] = factory
}

// Engines lists registered engine names in sorted order.
func Engines() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates the SentenceSplitter named by cfg.Engine. An empty name selects regex.
func New(cfg *config.SplitterConfig) (port.SentenceSplitter, error) {
	name := cfg.Engine
	if name == "" {
		name = string(domain.EngineRegex)
	}
	factory, ok := engines[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownSplitter, name)
	}
	return factory(cfg)
}
