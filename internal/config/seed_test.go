package config

import (
	"testing"

	"github.com/tmajors/runr/internal/command"
)

func TestSeed(t *testing.T) {
	reg := Seed()

	wantContexts := []command.Context{
		command.ContextRun, command.ContextTest, command.ContextBuild, command.ContextBench,
	}
	if got := reg.Contexts(); len(got) != len(wantContexts) {
		t.Fatalf("Contexts() = %v, want %v", got, wantContexts)
	}

	for _, ctx := range wantContexts {
		cfg := reg.Configs(ctx)
		if cfg.DefaultKey() != SeedKey {
			t.Errorf("context %q default = %q, want %q", ctx, cfg.DefaultKey(), SeedKey)
		}
		d, err := cfg.Get(SeedKey)
		if err != nil {
			t.Errorf("context %q: %v", ctx, err)
			continue
		}
		if d.Type() != command.TypeCargo {
			t.Errorf("context %q type = %q, want cargo", ctx, d.Type())
		}
		if d.Command() == "" {
			t.Errorf("context %q has empty seeded command", ctx)
		}
	}
}

func TestSeed_TestContextCommand(t *testing.T) {
	d, err := Seed().DefaultDetails(command.ContextTest)
	if err != nil {
		t.Fatalf("DefaultDetails() error: %v", err)
	}
	if d.Command() != "test" {
		t.Errorf("Command() = %q, want %q", d.Command(), "test")
	}
}
