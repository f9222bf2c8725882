package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"

	runrerrors "github.com/tmajors/runr/internal/errors"
)

const defaultFixture = `[commands.rust-test]
default_key = 'cargo-test'

[commands.rust-test.entries.cargo-test]
command = 'test'
type = 'cargo'

[commands.rust-test.entries.cargo-test-verbose]
command = 'test'
type = 'cargo'
params = ['--', '--nocapture']
`

func TestRunDefault_SwitchesDefault(t *testing.T) {
	path := setupTest(t)
	if err := afero.WriteFile(fsys, path, []byte(defaultFixture), 0600); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	err := runDefaultWithWriter(&buf, []string{"rust-test", "cargo-test-verbose"})
	if err != nil {
		t.Fatalf("runDefaultWithWriter() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Default for rust-test is now cargo-test-verbose") {
		t.Errorf("output = %q, want confirmation message", buf.String())
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "default_key = 'cargo-test-verbose'") {
		t.Errorf("persisted document should carry the new default:\n%s", data)
	}
}

func TestRunDefault_UnknownKey(t *testing.T) {
	path := setupTest(t)
	if err := afero.WriteFile(fsys, path, []byte(defaultFixture), 0600); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	err := runDefaultWithWriter(&buf, []string{"rust-test", "nope"})
	if err == nil {
		t.Fatal("runDefaultWithWriter() should fail for an unknown key")
	}
	if !errors.Is(err, runrerrors.ErrKeyNotFound) {
		t.Errorf("error = %v, want ErrKeyNotFound", err)
	}
}

func TestRunDefault_RequiresKeyOrPick(t *testing.T) {
	setupTest(t)

	var buf bytes.Buffer
	err := runDefaultWithWriter(&buf, []string{"rust-test"})
	if err == nil {
		t.Fatal("runDefaultWithWriter() should fail without a key or --pick")
	}

	var exitErr *runrerrors.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error should be *ExitError, got %T", err)
	}
	if !strings.Contains(exitErr.Suggestion, "--pick") {
		t.Errorf("Suggestion = %q, should mention --pick", exitErr.Suggestion)
	}
}

func TestPickKey_EmptyContext(t *testing.T) {
	_, err := pickKey(nil)
	if err == nil {
		t.Fatal("pickKey() should fail with no keys")
	}
	if !errors.Is(err, runrerrors.ErrNoConfigForContext) {
		t.Errorf("error = %v, want ErrNoConfigForContext", err)
	}
}
