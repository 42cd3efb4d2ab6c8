// Package loader provides the feature loading system.
//
// Each feature (plugins, lobby, integrity) implements Feature and is registered with a
// Manager; LoadAll mounts the routes of every enabled feature on the Fiber router.
//
//	mgr := loader.NewManager(logg)
//	mgr.Register(plugins.NewFeature(svc))
//	if err := mgr.LoadAll(app); err != nil { ... }
package loader
