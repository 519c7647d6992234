// Package api provides the HTTP API for the application
package api

import (
	"voiceloom/internal/platform/config"
	"voiceloom/internal/platform/logger"
	phttp "voiceloom/internal/platform/net/http"
	"voiceloom/internal/platform/store"

	"voiceloom/internal/modkit"
	"voiceloom/internal/modkit/httpkit"
	"voiceloom/internal/modkit/module"
	"voiceloom/internal/modkit/swaggerkit"

	creatorsmod "voiceloom/internal/services/api/creators/module"
	metamod "voiceloom/internal/services/api/meta/module"
	apivoicesmod "voiceloom/internal/services/api/voices/module"

	trainingmod "voiceloom/internal/services/training/module"
	variationsmod "voiceloom/internal/services/variations/module"
	voicesmod "voiceloom/internal/services/voices/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// bearer tokens carry an opaque user id issued by the identity provider
	// the gateway has already authenticated them, so the parse is a pass-through
	auth := httpkit.NewPortFunc(func(token string) (string, error) {
		return token, nil
	})

	// engine modules first, the API modules consume their ports
	voices := voicesmod.New(deps)
	vp := module.MustPortsOf[voicesmod.Ports](voices)

	training := trainingmod.New(deps, modkit.WithPorts(trainingmod.DepPorts{
		Curator:  vp.Curator,
		Builder:  vp.Builder,
		Registry: vp.Registry,
	}))
	tp := module.MustPortsOf[trainingmod.Ports](training)

	variations := variationsmod.New(deps, modkit.WithPorts(variationsmod.DepPorts{
		Gen:      vp.Gen,
		Registry: vp.Registry,
	}))
	xp := module.MustPortsOf[variationsmod.Ports](variations)

	mods := []module.Module{
		metamod.New(deps),
		voices,
		training,
		variations,
		creatorsmod.New(deps, modkit.WithPorts(creatorsmod.DepPorts{
			Auth:     auth,
			Training: tp.Service,
		})),
		apivoicesmod.New(deps, modkit.WithPorts(apivoicesmod.DepPorts{
			Auth:       auth,
			Registry:   vp.Registry,
			Training:   tp.Service,
			Variations: xp.Service,
		})),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name for cross-module lookups
			module.Register(m.Name(), m.Ports())

			m.MountRoutes(api)
		}
	})
}
