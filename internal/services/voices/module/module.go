// Package module wires the voice model engine: content source client, curator,
// generation client, and the registry/builder service. It exposes ports only,
// HTTP surfaces live under services/api.
package module

import (
	"voiceloom/internal/adapters/textgen"
	"voiceloom/internal/adapters/twitterapi"
	"voiceloom/internal/modkit"
	"voiceloom/internal/modkit/httpkit"
	curatordomain "voiceloom/internal/services/curator/domain"
	curatorsvc "voiceloom/internal/services/curator/service"
	"voiceloom/internal/services/voices/domain"
	"voiceloom/internal/services/voices/repo"
	"voiceloom/internal/services/voices/service"
)

// Ports exposed by the voices module
type Ports struct {
	Registry domain.RegistryPort
	Builder  domain.BuilderPort
	Curator  curatordomain.ServicePort
	Gen      domain.TextGenerator
}

// Module implements the voices engine module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new voices module
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	source := twitterapi.NewClient(twitterapi.Options{
		BaseURL: opts.TwitterBaseURL,
		APIKey:  opts.TwitterAPIKey,
		Timeout: opts.TwitterTimeout,
	})
	curator := curatorsvc.New(source)

	gen := textgen.NewClient(textgen.Options{
		BaseURL: opts.TextgenBaseURL,
		APIKey:  opts.TextgenAPIKey,
		Model:   opts.TextgenModel,
		Timeout: opts.TextgenTimeout,
	})

	binder := repo.NewPG()
	svc := service.New(deps.PG, binder, gen, curator, service.Config{
		Curation:     opts.Curation,
		PromptBudget: opts.PromptBudget,
		Temperature:  opts.Temperature,
	})

	m := &Module{deps: deps}
	m.ports = Ports{
		Registry: svc,
		Builder:  svc,
		Curator:  curator,
		Gen:      gen,
	}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "voices" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
