package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"

	runrerrors "github.com/tmajors/runr/internal/errors"
)

func TestSetCommand_Metadata(t *testing.T) {
	if !strings.HasPrefix(setCmd.Use, "set") {
		t.Errorf("Use = %q, want set prefix", setCmd.Use)
	}
	for _, flag := range []string{"command", "type", "params", "env", "cwd", "pre-command", "allow-multiple"} {
		if setCmd.Flags().Lookup(flag) == nil {
			t.Errorf("--%s flag should be defined", flag)
		}
	}
}

func TestRunSet_CreatesEntry(t *testing.T) {
	path := setupTest(t)

	setFlag(t, setCmd.Flags(), "command", "test")
	setFlag(t, setCmd.Flags(), "type", "cargo")
	setFlag(t, setCmd.Flags(), "params", "--,--nocapture")

	var buf bytes.Buffer
	err := runSetWithWriter(&buf, setCmd, []string{"rust-test", "cargo-test-verbose"})
	if err != nil {
		t.Fatalf("runSetWithWriter() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Saved rust-test/cargo-test-verbose") {
		t.Errorf("output = %q, want saved message", buf.String())
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.Contains(content, "[commands.rust-test.entries.cargo-test-verbose]") {
		t.Errorf("persisted document missing entry table:\n%s", content)
	}
	if !strings.Contains(content, "'--nocapture'") {
		t.Errorf("persisted document missing params:\n%s", content)
	}
}

func TestRunSet_NewEntryRequiresCommand(t *testing.T) {
	setupTest(t)

	var buf bytes.Buffer
	err := runSetWithWriter(&buf, setCmd, []string{"rust-test", "cargo-test"})
	if err == nil {
		t.Fatal("runSetWithWriter() should require --command for new entries")
	}
	if !errors.Is(err, runrerrors.ErrInvalidCommand) {
		t.Errorf("error = %v, want ErrInvalidCommand", err)
	}
}

func TestRunSet_UpdatesOnlyChangedFields(t *testing.T) {
	path := setupTest(t)
	doc := `[commands.rust-test]
default_key = 'cargo-test'

[commands.rust-test.entries.cargo-test]
command = 'test'
type = 'cargo'
params = ['--workspace']
`
	if err := afero.WriteFile(fsys, path, []byte(doc), 0600); err != nil {
		t.Fatal(err)
	}

	setFlag(t, setCmd.Flags(), "command", "test --release")

	var buf bytes.Buffer
	if err := runSetWithWriter(&buf, setCmd, []string{"rust-test", "cargo-test"}); err != nil {
		t.Fatalf("runSetWithWriter() error = %v", err)
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.Contains(content, "test --release") {
		t.Errorf("command should be updated:\n%s", content)
	}
	if !strings.Contains(content, "'--workspace'") {
		t.Errorf("untouched params should survive the update:\n%s", content)
	}
	if !strings.Contains(content, "default_key = 'cargo-test'") {
		t.Errorf("updating an entry should not touch the default:\n%s", content)
	}
}

func TestRunSet_PreCommandMustExist(t *testing.T) {
	setupTest(t)

	setFlag(t, setCmd.Flags(), "command", "test")
	setFlag(t, setCmd.Flags(), "pre-command", "missing-key")

	var buf bytes.Buffer
	err := runSetWithWriter(&buf, setCmd, []string{"rust-test", "cargo-test"})
	if err == nil {
		t.Fatal("runSetWithWriter() should reject a dangling pre-command")
	}
	if !errors.Is(err, runrerrors.ErrInvalidPreCommand) {
		t.Errorf("error = %v, want ErrInvalidPreCommand", err)
	}
}

func TestRunSet_PreCommandChaining(t *testing.T) {
	path := setupTest(t)
	doc := `[commands.rust-test.entries.cargo-build]
command = 'build'
type = 'cargo'
`
	if err := afero.WriteFile(fsys, path, []byte(doc), 0600); err != nil {
		t.Fatal(err)
	}

	setFlag(t, setCmd.Flags(), "command", "test")
	setFlag(t, setCmd.Flags(), "pre-command", "cargo-build")

	var buf bytes.Buffer
	if err := runSetWithWriter(&buf, setCmd, []string{"rust-test", "cargo-test"}); err != nil {
		t.Fatalf("runSetWithWriter() error = %v", err)
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "pre_command = 'cargo-build'") {
		t.Errorf("persisted document missing pre-command:\n%s", data)
	}
}

func TestRunSet_RejectsUnknownType(t *testing.T) {
	setupTest(t)

	setFlag(t, setCmd.Flags(), "command", "test")
	setFlag(t, setCmd.Flags(), "type", "gradle")

	var buf bytes.Buffer
	if err := runSetWithWriter(&buf, setCmd, []string{"rust-test", "cargo-test"}); err == nil {
		t.Fatal("runSetWithWriter() should reject an unknown type")
	}
}

func TestRunSet_EnvRoundTrip(t *testing.T) {
	path := setupTest(t)

	setFlag(t, setCmd.Flags(), "command", "test")
	setFlag(t, setCmd.Flags(), "env", "RUST_BACKTRACE=1")
	setFlag(t, setCmd.Flags(), "env", "RUST_LOG=debug")

	var buf bytes.Buffer
	if err := runSetWithWriter(&buf, setCmd, []string{"rust-test", "cargo-test"}); err != nil {
		t.Fatalf("runSetWithWriter() error = %v", err)
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.Contains(content, "RUST_BACKTRACE = '1'") || !strings.Contains(content, "RUST_LOG = 'debug'") {
		t.Errorf("persisted document missing environment:\n%s", content)
	}
}
