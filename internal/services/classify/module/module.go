// Package module implements the classify module
package module

import (
	"langsniff/internal/adapters/engine"
	"langsniff/internal/core/langcode"
	"langsniff/internal/modkit"
	"langsniff/internal/services/classify/domain"
	"langsniff/internal/services/classify/service"
)

// Ports exposed by the classify module
type Ports struct {
	Classifier domain.ClassifierPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	name  string
	ports Ports
}

// newEngine is the engine constructor seam; tests swap in a fake
var newEngine = func(reg *langcode.Registry, codes []langcode.Code, opt engine.Options) (domain.EnginePort, error) {
	return engine.New(reg, codes, opt)
}

// New constructs the classify module for the run described by rc.
// The engine is built for exactly rc.Candidates unless one is injected through domain.Ports
func New(deps modkit.Deps, rc *domain.Config, opts Options, mods ...modkit.Option) (*Module, error) {
	if rc == nil {
		panic("classify module: nil run config")
	}
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("classify"),
	}, mods...)...)

	var ports domain.Ports
	if b.Ports != nil {
		p, ok := b.Ports.(domain.Ports)
		if !ok {
			panic("classify module: expected WithPorts(classify/domain.Ports)")
		}
		ports = p
	}

	eng := ports.Engine
	if eng == nil {
		var err error
		eng, err = newEngine(langcode.Default(), rc.Candidates, engine.Options{
			LowAccuracy:         opts.Quick,
			Preload:             opts.Preload,
			MinRelativeDistance: opts.MinRelativeDistance,
		})
		if err != nil {
			return nil, err
		}
	}

	deps.Logger().Debug().
		Str("module", b.Name).
		Int("candidates", len(rc.Candidates)).
		Int("workers", opts.Workers).
		Bool("quick", opts.Quick).
		Bool("preload", opts.Preload).
		Float64("min_relative_distance", opts.MinRelativeDistance).
		Msg("classify module ready")

	svc := service.New(eng, service.Config{
		Workers:       opts.Workers,
		MinConfidence: opts.MinConfidence,
		MinLetters:    opts.MinLetters,
		All:           opts.All,
		Multi:         opts.Multi,
	})

	return &Module{
		deps:  deps,
		name:  b.Name,
		ports: Ports{Classifier: svc},
	}, nil
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return m.name }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }
