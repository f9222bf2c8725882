package command

import "maps"

// Details describes one concrete way to invoke an external command.
// Values are immutable once built: every Details comes out of a
// Builder, and "editing" one means building a replacement and
// substituting it in the owning registry entry.
type Details struct {
	command    string
	typ        Type
	env        map[string]string
	preCommand string
	params     []string
	workingDir string
	allowMulti bool
}

// Command returns the command string. Never empty.
func (d *Details) Command() string {
	return d.command
}

// Type returns the command type tag.
func (d *Details) Type() Type {
	return d.typ
}

// Env returns a copy of the environment mapping.
func (d *Details) Env() map[string]string {
	if len(d.env) == 0 {
		return map[string]string{}
	}
	return maps.Clone(d.env)
}

// PreCommand returns the pre-command, or "" when none is set.
func (d *Details) PreCommand() string {
	return d.preCommand
}

// Params returns a copy of the ordered argument list.
func (d *Details) Params() []string {
	out := make([]string, len(d.params))
	copy(out, d.params)
	return out
}

// WorkingDirectory returns the working directory, or "" meaning the
// caller's current directory.
func (d *Details) WorkingDirectory() string {
	return d.workingDir
}

// AllowMultipleInstances reports whether concurrent invocations of this
// command are permitted by the executor.
func (d *Details) AllowMultipleInstances() bool {
	return d.allowMulti
}

// Equal reports whether two Details describe the same invocation.
func (d *Details) Equal(other *Details) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.command != other.command ||
		d.typ != other.typ ||
		d.preCommand != other.preCommand ||
		d.workingDir != other.workingDir ||
		d.allowMulti != other.allowMulti {
		return false
	}
	if len(d.params) != len(other.params) {
		return false
	}
	for i := range d.params {
		if d.params[i] != other.params[i] {
			return false
		}
	}
	return maps.Equal(d.env, other.env)
}
