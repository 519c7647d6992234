// Package module wires the variation orchestrator
package module

import (
	"voiceloom/internal/modkit"
	"voiceloom/internal/modkit/httpkit"
	"voiceloom/internal/services/variations/domain"
	"voiceloom/internal/services/variations/repo"
	"voiceloom/internal/services/variations/service"
	voicesdomain "voiceloom/internal/services/voices/domain"
)

// DepPorts are the collaborator ports this module must be given
// pass them with modkit.WithPorts, the voices module owns both
type DepPorts struct {
	Gen      voicesdomain.TextGenerator
	Registry voicesdomain.RegistryPort
}

// Ports exposed by the variations module
type Ports struct {
	Service domain.ServicePort
}

// Module implements the variations service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new variations module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("variations"),
	}, opts...)...)

	dp, ok := b.Ports.(DepPorts)
	if !ok {
		panic("variations module: expected WithPorts(variations/module.DepPorts)")
	}
	if dp.Gen == nil || dp.Registry == nil {
		panic("variations module: DepPorts missing Gen or Registry")
	}

	cfg := FromConfig(deps.Cfg)
	svc := service.New(deps.PG, repo.NewPG(), dp.Gen, dp.Registry, service.Config{
		Temperature: cfg.Temperature,
		MaxIdeaLen:  cfg.MaxIdeaLen,
	})

	m := &Module{deps: deps}
	m.ports = Ports{Service: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "variations" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
