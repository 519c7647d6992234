// Package module wires voice models into the API using modkit
package module

import (
	stdhttp "net/http"

	modkit "voiceloom/internal/modkit"
	"voiceloom/internal/modkit/httpkit"
	"voiceloom/internal/platform/net/middleware"
	str "voiceloom/internal/platform/strings"
	voiceshttp "voiceloom/internal/services/api/voices/http"
	trainingdomain "voiceloom/internal/services/training/domain"
	variationsdomain "voiceloom/internal/services/variations/domain"
	voicesdomain "voiceloom/internal/services/voices/domain"
)

// DepPorts are the collaborator ports this module must be given
type DepPorts struct {
	Auth       middleware.AuthPort
	Registry   voicesdomain.RegistryPort
	Training   trainingdomain.ServicePort
	Variations variationsdomain.ServicePort
}

// Module implements the voice models API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(stdhttp.Handler) stdhttp.Handler
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// New constructs the voice models module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("voice-models"),
		modkit.WithPrefix("/voice-models"),
	}, opts...)...)

	dp, ok := b.Ports.(DepPorts)
	if !ok {
		panic("voice-models module: expected WithPorts(voices/module.DepPorts)")
	}
	if dp.Auth == nil || dp.Registry == nil || dp.Training == nil || dp.Variations == nil {
		panic("voice-models module: DepPorts missing a collaborator")
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		httpkit.Protected(r, dp.Auth, func(pr httpkit.Router) {
			voiceshttp.Register(pr, voiceshttp.Deps{
				Registry:   dp.Registry,
				Training:   dp.Training,
				Variations: dp.Variations,
			})
		})
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports returns nothing, this module only consumes ports
func (m *Module) Ports() any { return nil }
