// Package command defines the value types describing how an external
// command is invoked: the immutable Details record, its validating
// Builder, and the context/type tags used to key configurations.
package command

// Context identifies the usage scenario a command configuration is keyed
// by. It is an opaque lookup key: any non-empty string works, though most
// callers use one of the well-known constants below.
type Context string

// Well-known contexts seeded by runr init. The set is open; a context
// like a file path or a task tag is equally valid.
const (
	ContextRun    Context = "run"
	ContextTest   Context = "test"
	ContextBuild  Context = "build"
	ContextBench  Context = "bench"
	ContextScript Context = "script"
)

// String returns the context key.
func (c Context) String() string {
	return string(c)
}

// Type classifies how a command string is interpreted by the executor.
type Type string

// Supported command types.
const (
	// TypeCargo runs the command through cargo (e.g. "test" -> "cargo test").
	TypeCargo Type = "cargo"

	// TypeShell runs the command through the user's shell. Default.
	TypeShell Type = "shell"

	// TypeMake runs the command as a make target.
	TypeMake Type = "make"

	// TypeNpm runs the command as an npm script.
	TypeNpm Type = "npm"
)

// DefaultType is the command type assumed when none is specified.
const DefaultType = TypeShell

// typeNames is the closed set of recognized type tags.
var typeNames = map[Type]struct{}{
	TypeCargo: {},
	TypeShell: {},
	TypeMake:  {},
	TypeNpm:   {},
}

// ValidType reports whether t is a recognized command type.
func ValidType(t Type) bool {
	_, ok := typeNames[t]
	return ok
}

// Types returns all recognized command types in deterministic order.
func Types() []Type {
	return []Type{TypeCargo, TypeShell, TypeMake, TypeNpm}
}

// ParseType maps a string tag to a Type, falling back to DefaultType for
// unrecognized or empty input. Lenient on purpose: hand-edited config
// files with a bad type tag degrade to the default instead of failing.
func ParseType(s string) Type {
	t := Type(s)
	if !ValidType(t) {
		return DefaultType
	}
	return t
}
