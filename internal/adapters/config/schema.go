package config

import "go.trai.ch/routeflow/internal/core/domain"

// fileSchema is the on-disk shape of routeflow.yaml.
type fileSchema struct {
	Storage  storageDTO  `yaml:"storage"`
	Cache    cacheDTO    `yaml:"cache"`
	Loader   loaderDTO   `yaml:"loader"`
	Preload  preloadDTO  `yaml:"preload"`
	Provider providerDTO `yaml:"provider"`

	// BaseRoutes are always available, even before authentication. Their
	// names survive a registry reset.
	BaseRoutes []routeDTO `yaml:"baseRoutes"`
	// StaticRoutes are the fixed async routes registered alongside the
	// permission-derived ones.
	StaticRoutes []routeDTO `yaml:"staticRoutes"`

	// Modules is the manifest the module loader resolves component paths
	// against.
	Modules map[string]moduleDTO `yaml:"modules"`
}

type storageDTO struct {
	Path string `yaml:"path"`
}

type cacheDTO struct {
	MaxEntries int `yaml:"maxEntries"`
}

type loaderDTO struct {
	DelayMs      int `yaml:"delayMs"`
	TimeoutMs    int `yaml:"timeoutMs"`
	RetryTimes   int `yaml:"retryTimes"`
	RetryDelayMs int `yaml:"retryDelayMs"`
}

type preloadDTO struct {
	IdleDelayMs int                 `yaml:"idleDelayMs"`
	Relations   map[string][]string `yaml:"relations"`
	KnownRoutes []string            `yaml:"knownRoutes"`
}

type providerDTO struct {
	// URL of the permission-route endpoint. When set, routes are fetched
	// over HTTP.
	URL string `yaml:"url"`
	// RoutesFile is a local YAML file with the same payload, used when no
	// URL is configured.
	RoutesFile string `yaml:"routesFile"`
}

type routeDTO struct {
	Name      string     `yaml:"name"`
	Path      string     `yaml:"path"`
	Component string     `yaml:"component"`
	Meta      metaDTO    `yaml:"meta"`
	Children  []routeDTO `yaml:"children"`
}

type metaDTO struct {
	Order     int      `yaml:"order"`
	Icon      string   `yaml:"icon"`
	Hidden    bool     `yaml:"hidden"`
	Roles     []string `yaml:"roles"`
	KeepAlive bool     `yaml:"keepAlive"`
}

type moduleDTO struct {
	Title string `yaml:"title"`
}

func (r routeDTO) toDomain() domain.Route {
	route := domain.Route{
		Name:      r.Name,
		Path:      r.Path,
		Component: r.Component,
	}
	if r.Meta.Order != 0 || r.Meta.Icon != "" || r.Meta.Hidden {
		route.Meta.Nav = &domain.NavMeta{
			Order:  r.Meta.Order,
			Icon:   r.Meta.Icon,
			Hidden: r.Meta.Hidden,
		}
	}
	if len(r.Meta.Roles) > 0 {
		route.Meta.Permission = &domain.PermissionMeta{Roles: r.Meta.Roles}
	}
	if r.Meta.KeepAlive {
		route.Meta.Cache = &domain.CacheMeta{KeepAlive: true}
	}
	for _, c := range r.Children {
		route.Children = append(route.Children, c.toDomain())
	}
	return route
}

func routesToDomain(dtos []routeDTO) []domain.Route {
	routes := make([]domain.Route, 0, len(dtos))
	for _, dto := range dtos {
		routes = append(routes, dto.toDomain())
	}
	return routes
}
