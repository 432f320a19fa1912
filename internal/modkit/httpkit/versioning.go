package httpkit

import "net/http"

// MountRoot applies middleware to a fresh route group at the router root and
// invokes mount to register module routes on it. The archive API serves its
// resources at the root path rather than under a version prefix
//
// example:
//
//	httpkit.MountRoot(r, httpkit.CommonStack(), func(root httpkit.Router) {
//	  clips.MountRoutes(root)
//	})
func MountRoot(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Group(func(root Router) {
		if len(mw) > 0 {
			root.Use(mw...)
		}
		mount(root)
	})
}
