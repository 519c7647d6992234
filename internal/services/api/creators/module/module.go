// Package module wires creator analysis into the API using modkit
package module

import (
	stdhttp "net/http"

	modkit "voiceloom/internal/modkit"
	"voiceloom/internal/modkit/httpkit"
	"voiceloom/internal/platform/net/middleware"
	str "voiceloom/internal/platform/strings"
	creatorshttp "voiceloom/internal/services/api/creators/http"
	trainingdomain "voiceloom/internal/services/training/domain"
)

// DepPorts are the collaborator ports this module must be given
type DepPorts struct {
	Auth     middleware.AuthPort
	Training trainingdomain.ServicePort
}

// Module implements the creators API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(stdhttp.Handler) stdhttp.Handler
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// New constructs the creators module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("creators"),
		modkit.WithPrefix("/creators"),
	}, opts...)...)

	dp, ok := b.Ports.(DepPorts)
	if !ok {
		panic("creators module: expected WithPorts(creators/module.DepPorts)")
	}
	if dp.Auth == nil || dp.Training == nil {
		panic("creators module: DepPorts missing Auth or Training")
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
			creatorshttp.Register(pr, dp.Training)
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
