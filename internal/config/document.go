package config

import (
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/tmajors/runr/internal/command"
	runrerrors "github.com/tmajors/runr/internal/errors"
	"github.com/tmajors/runr/internal/registry"
)

// The persisted document is decoded in two passes: first into the
// sparse types below, where every field is optional, then materialized
// into the strict registry types with documented defaults filled in.
// Materialization is pure so the lenient-defaulting rules are testable
// without touching a filesystem.

// document is the sparse top-level TOML shape.
type document struct {
	Commands map[string]docConfig `toml:"commands,omitempty"`
}

// docConfig is the sparse per-context shape.
type docConfig struct {
	DefaultKey string              `toml:"default_key,omitempty"`
	Entries    map[string]docEntry `toml:"entries,omitempty"`
}

// docEntry is the sparse per-entry shape. Every documented default is
// the field's zero value, so absent fields need no extra tracking.
type docEntry struct {
	Command                string            `toml:"command,omitempty"`
	Type                   string            `toml:"type,omitempty"`
	Env                    map[string]string `toml:"env,omitempty"`
	PreCommand             string            `toml:"pre_command,omitempty"`
	Params                 []string          `toml:"params,omitempty"`
	WorkingDirectory       string            `toml:"working_directory,omitempty"`
	AllowMultipleInstances bool              `toml:"allow_multiple_instances,omitempty"`
}

// Warning describes an anomaly the lenient load repaired instead of
// failing on: a dropped entry or a cleared default key.
type Warning struct {
	Context command.Context
	Key     string
	Reason  string
}

// parseDocument decodes raw TOML bytes into the sparse document.
// Unparseable syntax is the one load failure that does not degrade to
// defaults.
func parseDocument(data []byte) (*document, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Mark(
			errors.Wrap(err, "parsing config document"),
			runrerrors.ErrParseFailure,
		)
	}
	return &doc, nil
}

// materialize turns a sparse document into a strict Registry, filling
// absent fields with their defaults. Entries without a command are
// dropped and a default key naming a missing entry is cleared; both are
// reported as warnings, never as errors. Hand-edited documents degrade,
// they don't crash the tool.
func materialize(doc *document, opts ...registry.Option) (*registry.Registry, []Warning) {
	reg := registry.New(opts...)
	var warnings []Warning

	for _, name := range sortedKeys(doc.Commands) {
		ctx := command.Context(name)
		docCfg := doc.Commands[name]

		// Contexts stay registered even when they carry no entries, so
		// an emptied context survives save/load cycles.
		reg.Register(ctx)

		for _, key := range sortedKeys(docCfg.Entries) {
			entry := docCfg.Entries[key]
			if entry.Command == "" {
				warnings = append(warnings, Warning{
					Context: ctx,
					Key:     key,
					Reason:  "entry has no command, dropped",
				})
				continue
			}

			d, err := command.NewBuilder(entry.Command, command.ParseType(entry.Type)).
				Env(entry.Env).
				PreCommand(entry.PreCommand).
				Params(entry.Params).
				WorkingDirectory(entry.WorkingDirectory).
				AllowMultipleInstances(entry.AllowMultipleInstances).
				Build()
			if err != nil {
				warnings = append(warnings, Warning{
					Context: ctx,
					Key:     key,
					Reason:  "entry rejected: " + err.Error(),
				})
				continue
			}
			reg.Update(ctx, key, d)
		}

		if docCfg.DefaultKey != "" {
			if err := reg.SetDefault(ctx, docCfg.DefaultKey); err != nil {
				warnings = append(warnings, Warning{
					Context: ctx,
					Key:     docCfg.DefaultKey,
					Reason:  "default key names no entry, cleared",
				})
			}
		}
	}

	return reg, warnings
}

// serialize turns a Registry back into the sparse document shape.
// go-toml marshals map keys in sorted order, which combined with the
// sorted materialization pass keeps the document byte-stable across
// load/save cycles.
func serialize(reg *registry.Registry) *document {
	doc := &document{Commands: make(map[string]docConfig)}

	for _, ctx := range reg.Contexts() {
		cfg := reg.Configs(ctx)
		docCfg := docConfig{
			DefaultKey: cfg.DefaultKey(),
			Entries:    make(map[string]docEntry),
		}
		for _, key := range cfg.Keys() {
			d, err := cfg.Get(key)
			if err != nil {
				continue
			}
			docCfg.Entries[key] = docEntry{
				Command:                d.Command(),
				Type:                   string(d.Type()),
				Env:                    d.Env(),
				PreCommand:             d.PreCommand(),
				Params:                 d.Params(),
				WorkingDirectory:       d.WorkingDirectory(),
				AllowMultipleInstances: d.AllowMultipleInstances(),
			}
		}
		doc.Commands[string(ctx)] = docCfg
	}

	return doc
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// encodeDocument marshals the sparse document to TOML bytes.
func encodeDocument(doc *document) ([]byte, error) {
	data, err := toml.Marshal(doc)
	if err != nil {
		return nil, errors.Mark(
			errors.Wrap(err, "encoding config document"),
			runrerrors.ErrWriteFailure,
		)
	}
	return data, nil
}
