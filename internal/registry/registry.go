// Package registry resolves a section type key to an implementation, trying
// the static catalog first, then the store of previously synthesized
// sections, else reporting "unresolved" with a nil result. It is the only
// stateful component of the pipeline.
package registry

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"siteforge/internal/analyzer"
	"siteforge/internal/ir"
	"siteforge/internal/synth"
)

// Implementation is a resolved, renderable section.
type Implementation struct {
	TypeKey     string
	Name        string
	Construct   synth.ComponentConstructor
	Source      string
	Requirement ir.SectionRequirement
	Synthesized bool
}

// CatalogSource is the pluggable static-catalog lookup. Loads may be
// I/O-bound in other backends, so they take a context and must stay
// idempotent and side-effect free.
type CatalogSource interface {
	Load(ctx context.Context, typeKey string) (*Implementation, error)
}

// Registry caches resolved implementations and owns the append-only type
// catalog. Construct one per process (or per test) and inject it where
// resolution is needed; there is no package-level instance.
type Registry struct {
	log    *zap.Logger
	source CatalogSource

	mu          sync.RWMutex
	cache       map[string]*Implementation
	synthesized map[string]*Implementation
	catalog     []string

	flight singleflight.Group
}

// New builds a registry over the given catalog source. A nil source uses the
// built-in static catalog; a nil logger logs nowhere.
func New(source CatalogSource, log *zap.Logger) *Registry {
	if source == nil {
		source = NewStaticCatalog()
	}
	if log == nil {
		log = zap.NewNop()
	}
	r := &Registry{
		log:         log,
		source:      source,
		cache:       make(map[string]*Implementation),
		synthesized: make(map[string]*Implementation),
	}
	if sc, ok := source.(*StaticCatalog); ok {
		r.catalog = sc.TypeKeys()
	}
	return r
}

// Resolve returns the implementation for typeKey, or nil when the type is
// unknown. A nil result is not an error: the caller must render a visible
// "type not found" placeholder. Failures in the underlying catalog lookup
// are logged and treated as unresolved. Concurrent resolves for the same
// unresolved key share one lookup.
func (r *Registry) Resolve(ctx context.Context, typeKey string) (*Implementation, error) {
	r.mu.RLock()
	if impl, ok := r.cache[typeKey]; ok {
		r.mu.RUnlock()
		return impl, nil
	}
	r.mu.RUnlock()

	v, err, _ := r.flight.Do(typeKey, func() (any, error) {
		return r.resolveSlow(ctx, typeKey), nil
	})
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	impl, _ := v.(*Implementation)
	return impl, nil
}

func (r *Registry) resolveSlow(ctx context.Context, typeKey string) *Implementation {
	// Another flight may have filled the cache between the fast path and
	// this call.
	r.mu.RLock()
	if impl, ok := r.cache[typeKey]; ok {
		r.mu.RUnlock()
		return impl
	}
	r.mu.RUnlock()

	impl, err := r.source.Load(ctx, typeKey)
	if err != nil {
		r.log.Warn("catalog lookup failed, treating as unresolved",
			zap.String("type_key", typeKey), zap.Error(err))
		impl = nil
	}

	if impl == nil {
		r.mu.RLock()
		impl = r.synthesized[typeKey]
		r.mu.RUnlock()
	}

	if impl == nil {
		r.log.Debug("section type unresolved", zap.String("type_key", typeKey))
		return nil
	}

	r.mu.Lock()
	r.cache[typeKey] = impl
	r.mu.Unlock()
	return impl
}

// RegisterSynthesized runs the analyzer and synthesizer end to end, stores
// the result under a type key derived from name (or a generated one), and
// appends the key to the catalog. It returns the type key the section is now
// resolvable under.
func (r *Registry) RegisterSynthesized(description, name string) string {
	typeKey := kebabCase(name)
	if typeKey == "" {
		typeKey = "custom-" + uuid.NewString()[:8]
	}
	componentName := synth.ComponentName(typeKey)

	req := analyzer.Analyze(description)
	impl := &Implementation{
		TypeKey:     typeKey,
		Name:        componentName,
		Construct:   synth.SynthesizeComponent(req, componentName),
		Source:      synth.SynthesizeSource(req, componentName),
		Requirement: req,
		Synthesized: true,
	}

	r.mu.Lock()
	r.synthesized[typeKey] = impl
	if !containsString(r.catalog, typeKey) {
		r.catalog = append(r.catalog, typeKey)
	}
	// Invalidate a cached miss-then-register sequence for this key.
	delete(r.cache, typeKey)
	r.mu.Unlock()

	r.log.Info("synthesized section registered",
		zap.String("type_key", typeKey),
		zap.String("component", componentName),
		zap.Int("elements", len(req.Elements)))
	return typeKey
}

// Register stores a pre-built synthesized implementation under its own type
// key. The page pipeline uses this for sections it expanded and generated
// itself; RegisterSynthesized remains the text-in shortcut.
func (r *Registry) Register(impl *Implementation) {
	if impl == nil || impl.TypeKey == "" {
		return
	}
	impl.Synthesized = true

	r.mu.Lock()
	r.synthesized[impl.TypeKey] = impl
	if !containsString(r.catalog, impl.TypeKey) {
		r.catalog = append(r.catalog, impl.TypeKey)
	}
	delete(r.cache, impl.TypeKey)
	r.mu.Unlock()

	r.log.Info("implementation registered",
		zap.String("type_key", impl.TypeKey),
		zap.String("component", impl.Name))
}

// IsSynthesized reports whether typeKey came from runtime synthesis rather
// than the static catalog.
func (r *Registry) IsSynthesized(typeKey string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.synthesized[typeKey]
	return ok
}

// ListSynthesized returns the synthesized type keys, sorted.
func (r *Registry) ListSynthesized() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.synthesized))
	for k := range r.synthesized {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ListAllTypes returns the full known-type catalog in registration order.
func (r *Registry) ListAllTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.catalog...)
}

func kebabCase(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
