package command

import (
	"maps"
	"strings"

	"github.com/cockroachdb/errors"

	runrerrors "github.com/tmajors/runr/internal/errors"
)

// Validator is a predicate run against a fully assembled Details before
// the Builder accepts it. Validators are captured at build time only and
// are never persisted.
type Validator interface {
	Validate(d *Details) error
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc func(d *Details) error

// Validate calls f(d).
func (f ValidatorFunc) Validate(d *Details) error {
	return f(d)
}

// Builder assembles a Details value. The two required fields are taken
// at construction; everything else is optional and chainable, with
// overwrite-on-repeat semantics. Build is the single construction path
// for Details, so every instance in the system has passed its declared
// validators.
type Builder struct {
	command    string
	typ        Type
	env        map[string]string
	preCommand string
	params     []string
	workingDir string
	allowMulti bool
	validators []Validator
}

// NewBuilder creates a Builder for the given command and type.
// An empty command is rejected later, by Build.
func NewBuilder(cmd string, typ Type) *Builder {
	return &Builder{
		command: cmd,
		typ:     typ,
	}
}

// Env replaces the environment mapping.
func (b *Builder) Env(env map[string]string) *Builder {
	b.env = maps.Clone(env)
	return b
}

// PreCommand sets the command executed before the main command.
func (b *Builder) PreCommand(pre string) *Builder {
	b.preCommand = pre
	return b
}

// Params replaces the ordered argument list.
func (b *Builder) Params(params []string) *Builder {
	b.params = make([]string, len(params))
	copy(b.params, params)
	return b
}

// WorkingDirectory sets the directory the command runs in.
func (b *Builder) WorkingDirectory(dir string) *Builder {
	b.workingDir = dir
	return b
}

// AllowMultipleInstances sets whether concurrent invocations are permitted.
func (b *Builder) AllowMultipleInstances(allow bool) *Builder {
	b.allowMulti = allow
	return b
}

// Type overrides the command type set at construction.
func (b *Builder) Type(typ Type) *Builder {
	b.typ = typ
	return b
}

// AddValidator appends a validator. Validators accumulate and run in
// insertion order at Build time; all must pass.
func (b *Builder) AddValidator(v Validator) *Builder {
	b.validators = append(b.validators, v)
	return b
}

// ToBuilder returns a Builder pre-filled from an existing Details.
// This is how an entry is "edited": rebuild a replacement and
// substitute it in the owning registry entry.
func (d *Details) ToBuilder() *Builder {
	b := NewBuilder(d.command, d.typ).
		PreCommand(d.preCommand).
		WorkingDirectory(d.workingDir).
		AllowMultipleInstances(d.allowMulti)
	if len(d.env) > 0 {
		b.Env(d.env)
	}
	if len(d.params) > 0 {
		b.Params(d.params)
	}
	return b
}

// Build assembles the Details, fills defaults for unset fields, and runs
// every accumulated validator in insertion order, short-circuiting on
// the first failure. On success it returns the immutable Details.
func (b *Builder) Build() (*Details, error) {
	if strings.TrimSpace(b.command) == "" {
		return nil, errors.Mark(
			errors.New("command must not be empty"),
			runrerrors.ErrInvalidCommand,
		)
	}

	typ := b.typ
	if typ == "" {
		typ = DefaultType
	}

	d := &Details{
		command:    b.command,
		typ:        typ,
		preCommand: b.preCommand,
		workingDir: b.workingDir,
		allowMulti: b.allowMulti,
	}
	if len(b.env) > 0 {
		d.env = maps.Clone(b.env)
	}
	if len(b.params) > 0 {
		d.params = make([]string, len(b.params))
		copy(d.params, b.params)
	}

	for _, v := range b.validators {
		if err := v.Validate(d); err != nil {
			return nil, errors.Mark(
				errors.Wrap(err, "validating command details"),
				runrerrors.ErrValidationFailed,
			)
		}
	}

	return d, nil
}
