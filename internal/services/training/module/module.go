// Package module wires the training session manager
package module

import (
	"voiceloom/internal/modkit"
	"voiceloom/internal/modkit/httpkit"
	curatordomain "voiceloom/internal/services/curator/domain"
	"voiceloom/internal/services/training/domain"
	"voiceloom/internal/services/training/repo"
	"voiceloom/internal/services/training/service"
	voicesdomain "voiceloom/internal/services/voices/domain"
)

// DepPorts are the collaborator ports this module must be given
// pass them with modkit.WithPorts, the voices module owns all three
type DepPorts struct {
	Curator  curatordomain.ServicePort
	Builder  voicesdomain.BuilderPort
	Registry voicesdomain.RegistryPort
}

// Ports exposed by the training module
type Ports struct {
	Service domain.ServicePort
}

// Module implements the training service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new training module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("training"),
	}, opts...)...)

	dp, ok := b.Ports.(DepPorts)
	if !ok {
		panic("training module: expected WithPorts(training/module.DepPorts)")
	}
	if dp.Curator == nil || dp.Builder == nil || dp.Registry == nil {
		panic("training module: DepPorts missing Curator, Builder, or Registry")
	}

	cfg := FromConfig(deps.Cfg)
	svc := service.New(deps.PG, repo.NewPG(), dp.Curator, dp.Builder, dp.Registry, cfg.Curation)

	m := &Module{deps: deps}
	m.ports = Ports{Service: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "training" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
