package registry

import (
	"github.com/cockroachdb/errors"

	"github.com/tmajors/runr/internal/command"
	runrerrors "github.com/tmajors/runr/internal/errors"
)

// Registry maps each command context to its Config. It owns every
// Config it hands out; contexts are kept in insertion order so the
// persisted document is byte-stable across save cycles.
type Registry struct {
	order   []command.Context
	configs map[command.Context]*Config

	// strict controls SetDefault on unregistered contexts: strict mode
	// refuses them, lenient mode (the default) creates the context
	// first and lets the key lookup decide.
	strict bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithStrictContexts makes SetDefault fail with ErrContextNotFound for
// contexts that have never been registered, instead of lazily creating
// an empty Config for them.
func WithStrictContexts() Option {
	return func(r *Registry) {
		r.strict = true
	}
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		configs: make(map[command.Context]*Config),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Configs returns the Config for ctx, or an empty Config when the
// context is unregistered. The empty Config is not retained: reading
// never registers a context. Callers that need existence checked use
// StrictConfigs instead.
func (r *Registry) Configs(ctx command.Context) *Config {
	if cfg, ok := r.configs[ctx]; ok {
		return cfg
	}
	return NewConfig()
}

// StrictConfigs returns the Config for ctx, failing with
// ErrContextNotFound when the context has never been registered.
func (r *Registry) StrictConfigs(ctx command.Context) (*Config, error) {
	cfg, ok := r.configs[ctx]
	if !ok {
		return nil, errors.Mark(
			errors.Newf("context %q is not registered", ctx),
			runrerrors.ErrContextNotFound,
		)
	}
	return cfg, nil
}

// DefaultDetails resolves the default command details for ctx. A
// context with no stored entries at all fails with
// ErrNoConfigForContext; nothing is synthesized.
func (r *Registry) DefaultDetails(ctx command.Context) (*command.Details, error) {
	cfg, ok := r.configs[ctx]
	if !ok || cfg.Len() == 0 {
		return nil, errors.Mark(
			errors.Newf("context %q has no stored configurations", ctx),
			runrerrors.ErrNoConfigForContext,
		)
	}
	return cfg.Default()
}

// Update inserts or replaces the entry at (ctx, key), registering the
// context on first use.
func (r *Registry) Update(ctx command.Context, key string, details *command.Details) {
	r.getOrCreate(ctx).Update(key, details)
}

// Register ensures ctx is registered, creating an empty Config when
// needed, and returns its Config. Loading uses this to keep contexts
// the document mentions even when none of their entries survive, so a
// context emptied by Remove does not vanish on the next load.
func (r *Registry) Register(ctx command.Context) *Config {
	return r.getOrCreate(ctx)
}

// SetDefault marks (ctx, key) as the context's default entry. In
// lenient mode an unregistered context is created first, and the call
// then fails with ErrKeyNotFound since the fresh Config has no entries.
// In strict mode it fails with ErrContextNotFound instead.
func (r *Registry) SetDefault(ctx command.Context, key string) error {
	if r.strict {
		cfg, err := r.StrictConfigs(ctx)
		if err != nil {
			return err
		}
		return cfg.SetDefault(key)
	}
	return r.getOrCreate(ctx).SetDefault(key)
}

// Remove deletes the entry at (ctx, key). Unknown contexts and keys are
// no-ops. The context itself stays registered even when its last entry
// is removed.
func (r *Registry) Remove(ctx command.Context, key string) {
	if cfg, ok := r.configs[ctx]; ok {
		cfg.Remove(key)
	}
}

// Contexts returns the registered contexts in insertion order.
func (r *Registry) Contexts() []command.Context {
	out := make([]command.Context, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered contexts.
func (r *Registry) Len() int {
	return len(r.order)
}

func (r *Registry) getOrCreate(ctx command.Context) *Config {
	if cfg, ok := r.configs[ctx]; ok {
		return cfg
	}
	cfg := NewConfig()
	r.configs[ctx] = cfg
	r.order = append(r.order, ctx)
	return cfg
}
