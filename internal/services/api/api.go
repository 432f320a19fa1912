// Package api provides the HTTP API for the clip archive
package api

import (
	"timewarp/internal/platform/config"
	"timewarp/internal/platform/logger"
	phttp "timewarp/internal/platform/net/http"
	"timewarp/internal/platform/store"

	"timewarp/internal/modkit"
	"timewarp/internal/modkit/httpkit"
	"timewarp/internal/modkit/module"

	clipsmod "timewarp/internal/services/api/clips/module"
	contribmod "timewarp/internal/services/api/contributors/module"
	metamod "timewarp/internal/services/api/meta/module"
	submod "timewarp/internal/services/api/submissions/module"
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
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	mods := []module.Module{
		metamod.New(deps),
		contribmod.New(deps),
		submod.New(deps),
		clipsmod.New(deps),
	}

	// the archive API serves at the root path with a common middleware stack
	httpkit.MountRoot(r, httpkit.CommonStack(), func(root httpkit.Router) {
		phttp.MountSwagger(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(root)
		}
	})
}
