package registry

import (
	"github.com/cockroachdb/errors"

	"github.com/tmajors/runr/internal/command"
	runrerrors "github.com/tmajors/runr/internal/errors"
)

// Field editors. Entries are immutable, so each editor rebuilds the
// entry through the Builder with one field changed and substitutes the
// result. All of them fail with ErrKeyNotFound for a missing key.

// SetCommand replaces the command string of the entry at key. The
// command is a constructor argument of the Builder, so this editor
// rebuilds from scratch instead of going through ToBuilder.
func (c *Config) SetCommand(key, cmd string) error {
	d, err := c.Get(key)
	if err != nil {
		return err
	}
	next, err := command.NewBuilder(cmd, d.Type()).
		Env(d.Env()).
		PreCommand(d.PreCommand()).
		Params(d.Params()).
		WorkingDirectory(d.WorkingDirectory()).
		AllowMultipleInstances(d.AllowMultipleInstances()).
		Build()
	if err != nil {
		return err
	}
	c.Update(key, next)
	return nil
}

// SetType replaces the command type of the entry at key.
func (c *Config) SetType(key string, typ command.Type) error {
	return c.rebuild(key, func(b *command.Builder) *command.Builder {
		return b.Type(typ)
	})
}

// SetParams replaces the argument list of the entry at key.
func (c *Config) SetParams(key string, params []string) error {
	return c.rebuild(key, func(b *command.Builder) *command.Builder {
		return b.Params(params)
	})
}

// SetEnv replaces the environment mapping of the entry at key.
func (c *Config) SetEnv(key string, env map[string]string) error {
	return c.rebuild(key, func(b *command.Builder) *command.Builder {
		return b.Env(env)
	})
}

// SetWorkingDirectory replaces the working directory of the entry at key.
func (c *Config) SetWorkingDirectory(key, dir string) error {
	return c.rebuild(key, func(b *command.Builder) *command.Builder {
		return b.WorkingDirectory(dir)
	})
}

// SetAllowMultipleInstances replaces the concurrency flag of the entry at key.
func (c *Config) SetAllowMultipleInstances(key string, allow bool) error {
	return c.rebuild(key, func(b *command.Builder) *command.Builder {
		return b.AllowMultipleInstances(allow)
	})
}

// SetPreCommand sets the pre-command of the entry at key. The
// pre-command must name another existing key in this Config: it is a
// reference to a sibling entry, run before this one. An empty value
// clears it. Pointing an entry at itself is refused.
func (c *Config) SetPreCommand(key, preCommand string) error {
	if preCommand == key {
		return errors.Mark(
			errors.Newf("cannot set pre-command of %q to its own key", key),
			runrerrors.ErrInvalidPreCommand,
		)
	}
	if preCommand != "" {
		if _, ok := c.entries[preCommand]; !ok {
			return errors.Mark(
				errors.Newf("pre-command %q does not exist as a config key", preCommand),
				runrerrors.ErrInvalidPreCommand,
			)
		}
	}
	return c.rebuild(key, func(b *command.Builder) *command.Builder {
		return b.PreCommand(preCommand)
	})
}

func (c *Config) rebuild(key string, change func(*command.Builder) *command.Builder) error {
	d, err := c.Get(key)
	if err != nil {
		return err
	}
	next, err := change(d.ToBuilder()).Build()
	if err != nil {
		return err
	}
	c.Update(key, next)
	return nil
}
