package config

import (
	"github.com/tmajors/runr/internal/command"
	"github.com/tmajors/runr/internal/registry"
)

// SeedKey is the config key given to each seeded entry.
const SeedKey = "default"

// seedCommands maps the seeded contexts to their initial cargo command.
// The script context is deliberately left out: it has no sensible
// default and stays empty until the user adds an entry.
var seedCommands = map[command.Context]string{
	command.ContextRun:   "run --package ${packageName} --bin ${binaryName}",
	command.ContextTest:  "test",
	command.ContextBuild: "build",
	command.ContextBench: "bench",
}

// Seed builds the registry a fresh installation starts from: run, test,
// build and bench each get a single cargo entry under SeedKey, which
// also becomes the context's default.
func Seed(opts ...registry.Option) *registry.Registry {
	reg := registry.New(opts...)

	for _, ctx := range []command.Context{
		command.ContextRun,
		command.ContextTest,
		command.ContextBuild,
		command.ContextBench,
	} {
		d, err := command.NewBuilder(seedCommands[ctx], command.TypeCargo).Build()
		if err != nil {
			// Seed commands are compile-time constants; a build failure
			// here is a programming error.
			panic(err)
		}
		reg.Update(ctx, SeedKey, d)
		if err := reg.SetDefault(ctx, SeedKey); err != nil {
			panic(err)
		}
	}

	return reg
}
