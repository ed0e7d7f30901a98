// Package registry owns the dynamic route lifecycle: fetching the
// permission-scoped route set, normalizing it, feeding the router, and
// tearing it back down on session changes.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/routeflow/internal/core/domain"
	"go.trai.ch/routeflow/internal/core/ports"
	"go.trai.ch/routeflow/internal/engine/preload"
	"go.trai.ch/zerr"
)

// Reserved route names and the catch-all path the registry manages itself.
const (
	// PlaceholderRouteName is registered when no credential is present so
	// navigation has somewhere to land before login completes.
	PlaceholderRouteName = "empty"
	// NotFoundRouteName is the terminal catch-all registered after all
	// dynamic routes so it matches last.
	NotFoundRouteName = "not-found"
	// CatchAllPath matches any path no other route claimed.
	CatchAllPath = "/:path(.*)*"
)

// State is the registry lifecycle state.
type State int

const (
	StateUninitialized State = iota
	StateInitialized
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	default:
		return "unknown"
	}
}

// UpdateFunc is notified with the loaded dynamic route names after each
// successful initialization.
type UpdateFunc func(loaded []string)

// Manager registers and unregisters dynamic routes. All methods are safe
// for concurrent use.
type Manager struct {
	router   ports.Router
	provider ports.RouteProvider
	creds    ports.CredentialSource
	pre      *preload.Preloader
	tracer   ports.Tracer
	log      ports.Logger

	baseRoutes   []domain.Route
	staticRoutes []domain.Route
	baseNames    map[string]struct{}

	mu          sync.Mutex
	state       State
	loadedNames []string
	fingerprint uint64
	onUpdate    []UpdateFunc
}

// NewManager creates a Manager. baseRoutes are the statically registered
// routes that survive Reset; staticRoutes are extra routes appended after
// every dynamic registration.
func NewManager(
	router ports.Router,
	provider ports.RouteProvider,
	creds ports.CredentialSource,
	pre *preload.Preloader,
	tracer ports.Tracer,
	log ports.Logger,
	baseRoutes, staticRoutes []domain.Route,
) *Manager {
	baseNames := make(map[string]struct{}, len(baseRoutes))
	for _, r := range baseRoutes {
		baseNames[r.Name] = struct{}{}
	}
	return &Manager{
		router:       router,
		provider:     provider,
		creds:        creds,
		pre:          pre,
		tracer:       tracer,
		log:          log,
		baseRoutes:   baseRoutes,
		staticRoutes: staticRoutes,
		baseNames:    baseNames,
	}
}

// Initialize fetches the dynamic route set and registers it. Calling it
// again while initialized is a no-op. Without a credential only the
// placeholder route is registered and the registry stays uninitialized.
func (m *Manager) Initialize(ctx context.Context) error {
	ctx, span := m.tracer.Start(ctx, "registry initialize")
	defer span.End()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateInitialized {
		m.log.Info("route registry already initialized, skipping")
		return nil
	}

	if _, ok := m.creds.Token(); !ok {
		m.registerPlaceholderLocked()
		span.SetAttribute("credential", false)
		return nil
	}

	routes, err := m.provider.FetchRoutes(ctx)
	if err != nil {
		span.RecordError(err)
		return zerr.Wrap(err, "fetch dynamic routes")
	}
	m.registerLocked(ctx, routes)
	span.SetAttribute("dynamic_routes", len(m.loadedNames))
	return nil
}

// Reset removes every route outside the base set and returns the registry
// to the uninitialized state. Base routes are never touched.
func (m *Manager) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resetLocked()
}

// Refresh re-fetches the dynamic route set and re-registers it. When the
// fetched set is identical to the currently registered one the router is
// left untouched; the returned bool reports whether anything changed.
func (m *Manager) Refresh(ctx context.Context) (bool, error) {
	ctx, span := m.tracer.Start(ctx, "registry refresh")
	defer span.End()

	if _, ok := m.creds.Token(); !ok {
		return false, zerr.New("refresh requires a credential")
	}

	routes, err := m.provider.FetchRoutes(ctx)
	if err != nil {
		span.RecordError(err)
		return false, zerr.Wrap(err, "fetch dynamic routes")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateInitialized && fingerprintRoutes(routes) == m.fingerprint {
		m.log.Info("route set unchanged, refresh skipped")
		span.SetAttribute("changed", false)
		return false, nil
	}
	if err := m.resetLocked(); err != nil {
		return false, err
	}
	m.registerLocked(ctx, routes)
	span.SetAttribute("changed", true)
	return true, nil
}

// OnUpdate registers fn to be called with the loaded route names after each
// successful registration.
func (m *Manager) OnUpdate(fn UpdateFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onUpdate = append(m.onUpdate, fn)
}

// Stats returns a snapshot of the registry state.
func (m *Manager) Stats() domain.RegistryStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	loaded := make([]string, len(m.loadedNames))
	copy(loaded, m.loadedNames)
	return domain.RegistryStats{
		Total:            len(m.router.Routes()),
		BasicCount:       len(m.baseRoutes),
		DynamicCount:     len(m.loadedNames),
		Initialized:      m.state == StateInitialized,
		LoadedRouteNames: loaded,
	}
}

// registerLocked normalizes and registers routes, appends the static
// routes and the catch-all, drops the placeholder, and notifies listeners.
func (m *Manager) registerLocked(ctx context.Context, routes []domain.Route) {
	// Fingerprint the raw descriptors so Refresh compares what the provider
	// sent, not the corrected form.
	fp := fingerprintRoutes(routes)

	var registered []domain.Route
	names := make([]string, 0, len(routes))

	for i := range routes {
		r := &routes[i]
		for _, fix := range domain.ValidateAndFix(r) {
			m.log.Warn(fmt.Sprintf("route %q (%s) corrected: %s",
				fix.RouteName, fix.RoutePath, fix.Reason))
		}
		if m.router.HasRoute(r.Name) {
			m.log.Warn(fmt.Sprintf("route %q already registered, skipping", r.Name))
			continue
		}
		if err := m.router.AddRoute(*r); err != nil {
			m.log.Warn(fmt.Sprintf("route %q rejected by router: %v", r.Name, err))
			continue
		}
		registered = append(registered, *r)
		names = append(names, r.Name)
	}

	for _, r := range m.staticRoutes {
		if m.router.HasRoute(r.Name) {
			continue
		}
		if err := m.router.AddRoute(r); err != nil {
			m.log.Warn(fmt.Sprintf("static route %q rejected by router: %v", r.Name, err))
			continue
		}
		names = append(names, r.Name)
	}

	if !m.router.HasRoute(NotFoundRouteName) {
		if err := m.router.AddRoute(domain.Route{
			Name: NotFoundRouteName,
			Path: CatchAllPath,
		}); err != nil {
			m.log.Warn(fmt.Sprintf("catch-all route rejected by router: %v", err))
		}
	}

	if m.router.HasRoute(PlaceholderRouteName) {
		if err := m.router.RemoveRoute(PlaceholderRouteName); err != nil {
			m.log.Warn(fmt.Sprintf("placeholder removal failed: %v", err))
		}
	}

	m.loadedNames = names
	m.fingerprint = fp
	m.state = StateInitialized
	m.log.Info(fmt.Sprintf("registered %d dynamic routes", len(names)))

	for _, fn := range m.onUpdate {
		fn(names)
	}
	m.pre.PreloadPermitted(ctx, registered)
}

// resetLocked removes every non-base route and clears the bookkeeping.
func (m *Manager) resetLocked() error {
	for _, r := range m.router.Routes() {
		if _, ok := m.baseNames[r.Name]; ok {
			continue
		}
		if err := m.router.RemoveRoute(r.Name); err != nil && !errors.Is(err, domain.ErrRouteNotFound) {
			return zerr.With(zerr.Wrap(err, "remove route"), "name", r.Name)
		}
	}
	m.loadedNames = nil
	m.fingerprint = 0
	m.state = StateUninitialized
	return nil
}

// registerPlaceholderLocked installs the pre-login landing route.
func (m *Manager) registerPlaceholderLocked() {
	if m.router.HasRoute(PlaceholderRouteName) {
		return
	}
	if err := m.router.AddRoute(domain.Route{
		Name: PlaceholderRouteName,
		Path: domain.PathSeparator,
	}); err != nil {
		m.log.Warn(fmt.Sprintf("placeholder route rejected by router: %v", err))
	}
}

// fingerprintRoutes hashes the normalized route set so an unchanged refresh
// can be skipped without diffing trees.
func fingerprintRoutes(routes []domain.Route) uint64 {
	d := xxhash.New()
	var write func(r domain.Route)
	write = func(r domain.Route) {
		_, _ = d.WriteString(r.Name)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(r.Path)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(r.Component)
		_, _ = d.WriteString("\x1e")
		for _, c := range r.Children {
			write(c)
		}
		_, _ = d.WriteString("\x1f")
	}
	for _, r := range routes {
		write(r)
	}
	return d.Sum64()
}
