// Package config owns the persisted root object: the command registry
// plus its load/save lifecycle against the store.
package config

import (
	"github.com/cockroachdb/errors"

	runrerrors "github.com/tmajors/runr/internal/errors"
	"github.com/tmajors/runr/internal/paths"
	"github.com/tmajors/runr/internal/registry"
	"github.com/tmajors/runr/internal/store"
)

// Config is the persisted root object. One instance is constructed at
// startup and passed explicitly to whatever needs it; there is no
// package-level singleton.
type Config struct {
	// Registry holds all command configurations.
	Registry *registry.Registry

	// Warnings collects the anomalies the last Load repaired.
	Warnings []Warning

	st   *store.Store
	path string
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	registry []registry.Option
	noSeed   bool
}

// WithStrictContexts propagates strict context policy to the registry:
// SetDefault refuses contexts that were never registered.
func WithStrictContexts() LoadOption {
	return func(o *loadOptions) {
		o.registry = append(o.registry, registry.WithStrictContexts())
	}
}

// WithoutSeedDefaults makes a missing config file load as an empty
// registry instead of the seeded one.
func WithoutSeedDefaults() LoadOption {
	return func(o *loadOptions) {
		o.noSeed = true
	}
}

// New returns a Config bound to path with an empty registry, without
// touching the store. Importing uses it to replace a document wholesale,
// even when the one on disk would not load.
func New(st *store.Store, path string) *Config {
	if path == "" {
		path = paths.ConfigFile()
	}
	return &Config{
		Registry: registry.New(),
		st:       st,
		path:     path,
	}
}

// Load reads the document at path through st and materializes it.
//
// The load is lenient by design: a missing file yields seeded defaults,
// and entries with missing fields get those fields' defaults. Only
// unparseable TOML fails, with ErrParseFailure. Partially written or
// hand-edited files never crash the tool.
func Load(st *store.Store, path string, opts ...LoadOption) (*Config, error) {
	var lo loadOptions
	for _, opt := range opts {
		opt(&lo)
	}

	if path == "" {
		path = paths.ConfigFile()
	}

	cfg := &Config{
		st:   st,
		path: path,
	}

	exists, err := st.Exists(path)
	if err != nil {
		return nil, errors.Mark(
			errors.Wrap(err, "checking config file"),
			runrerrors.ErrParseFailure,
		)
	}
	if !exists {
		if lo.noSeed {
			cfg.Registry = registry.New(lo.registry...)
		} else {
			cfg.Registry = Seed(lo.registry...)
		}
		return cfg, nil
	}

	data, err := st.Read(path)
	if err != nil {
		return nil, errors.Mark(
			errors.Wrap(err, "reading config file"),
			runrerrors.ErrParseFailure,
		)
	}

	doc, err := parseDocument(data)
	if err != nil {
		return nil, err
	}

	cfg.Registry, cfg.Warnings = materialize(doc, lo.registry...)
	return cfg, nil
}

// Materialize parses raw TOML document bytes and builds a registry from
// them with the same lenient repairs Load applies. Importing uses it to
// vet a replacement document before it overwrites the persisted one.
func Materialize(data []byte, opts ...registry.Option) (*registry.Registry, []Warning, error) {
	doc, err := parseDocument(data)
	if err != nil {
		return nil, nil, err
	}
	reg, warnings := materialize(doc, opts...)
	return reg, warnings, nil
}

// Save serializes the registry deterministically and writes it through
// the store. On failure the in-memory state is unchanged; save is not
// transactional with later loads, the last writer wins.
func (c *Config) Save() error {
	data, err := encodeDocument(serialize(c.Registry))
	if err != nil {
		return err
	}
	if err := c.st.Write(c.path, data, paths.DefaultFilePerm); err != nil {
		return errors.Mark(
			errors.Wrap(err, "writing config file"),
			runrerrors.ErrWriteFailure,
		)
	}
	return nil
}

// Path returns the backing file path this Config loads from and saves to.
func (c *Config) Path() string {
	return c.path
}

// Encode returns the deterministic TOML serialization of the registry
// without touching the store.
func (c *Config) Encode() ([]byte, error) {
	return encodeDocument(serialize(c.Registry))
}
