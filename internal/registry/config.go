// Package registry holds the in-memory registry of command
// configurations: a Config collects the named entries for one context
// and tracks which of them is the default, and a Registry maps each
// context to its Config.
//
// Neither type locks internally. Mutation must be serialized by the
// caller; concurrent reads are safe only while no writer is active.
package registry

import (
	"github.com/cockroachdb/errors"

	"github.com/tmajors/runr/internal/command"
	runrerrors "github.com/tmajors/runr/internal/errors"
)

// Config is the ordered collection of command configurations for one
// context. Entries are keyed by a caller-chosen config key, unique
// within the Config; iteration follows insertion order so persistence
// stays deterministic.
type Config struct {
	keys       []string
	entries    map[string]*command.Details
	defaultKey string
}

// NewConfig creates an empty Config.
func NewConfig() *Config {
	return &Config{
		entries: make(map[string]*command.Details),
	}
}

// Update inserts a new entry or replaces the entry at key. It never
// touches the default key: updating a non-default entry must not
// silently change which entry is the default.
func (c *Config) Update(key string, details *command.Details) {
	if _, exists := c.entries[key]; !exists {
		c.keys = append(c.keys, key)
	}
	c.entries[key] = details
}

// Get returns the entry at key.
func (c *Config) Get(key string) (*command.Details, error) {
	d, ok := c.entries[key]
	if !ok {
		return nil, errors.Mark(
			errors.Newf("no entry for key %q", key),
			runrerrors.ErrKeyNotFound,
		)
	}
	return d, nil
}

// SetDefault marks the entry at key as the default. The entry must
// already exist; the default key always names a live entry.
func (c *Config) SetDefault(key string) error {
	if _, ok := c.entries[key]; !ok {
		return errors.Mark(
			errors.Newf("cannot set default: no entry for key %q", key),
			runrerrors.ErrKeyNotFound,
		)
	}
	c.defaultKey = key
	return nil
}

// Default resolves the default entry. When no default key is set, a
// Config with exactly one entry falls back to that entry, so a fresh
// single-entry context works without an explicit default.
func (c *Config) Default() (*command.Details, error) {
	if c.defaultKey != "" {
		return c.entries[c.defaultKey], nil
	}
	if len(c.keys) == 1 {
		return c.entries[c.keys[0]], nil
	}
	return nil, errors.Mark(
		errors.Newf("no default among %d entries", len(c.keys)),
		runrerrors.ErrNoDefault,
	)
}

// Remove deletes the entry at key. Removing the default entry clears
// the default key. Removing a missing key is a no-op.
func (c *Config) Remove(key string) {
	if _, ok := c.entries[key]; !ok {
		return
	}
	delete(c.entries, key)
	for i, k := range c.keys {
		if k == key {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
	if c.defaultKey == key {
		c.defaultKey = ""
	}
}

// Keys returns the config keys in insertion order.
func (c *Config) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// DefaultKey returns the explicit default key, or "" when none is set.
func (c *Config) DefaultKey() string {
	return c.defaultKey
}

// Len returns the number of entries.
func (c *Config) Len() int {
	return len(c.keys)
}
