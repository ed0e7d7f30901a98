package domain

// RegistryStats is a read-only snapshot of the dynamic route registry.
type RegistryStats struct {
	// Total is the number of routes currently registered with the router.
	Total int `json:"total"`
	// BasicCount is the number of always-present base routes.
	BasicCount int `json:"basicCount"`
	// DynamicCount is the number of permission-derived routes loaded this
	// session.
	DynamicCount int `json:"dynamicCount"`
	// Initialized reports whether the registry has completed initialization.
	Initialized bool `json:"initialized"`
	// LoadedRouteNames lists the names registered this session.
	LoadedRouteNames []string `json:"loadedRouteNames"`
}

// CacheStats is a read-only snapshot of the component cache.
type CacheStats struct {
	Size     int `json:"size"`
	Capacity int `json:"capacity"`
	// Keys are the cached component paths ordered least to most recently
	// used.
	Keys []string `json:"keys"`
}
