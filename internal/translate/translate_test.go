package translate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTOMLToYAML(t *testing.T) {
	tomlDoc := `
[commands.test]
default_key = 'cargo-test'

[commands.test.entries.cargo-test]
command = 'test'
type = 'cargo'
`
	out, err := TOMLToYAML([]byte(tomlDoc))
	require.NoError(t, err)

	yamlStr := string(out)
	require.Contains(t, yamlStr, "default_key: cargo-test")
	require.Contains(t, yamlStr, "command: test")
}

func TestYAMLToTOML(t *testing.T) {
	yamlDoc := `
commands:
  test:
    default_key: cargo-test
    entries:
      cargo-test:
        command: test
        type: cargo
`
	out, err := YAMLToTOML([]byte(yamlDoc))
	require.NoError(t, err)
	require.Contains(t, string(out), "default_key = 'cargo-test'")
}

func TestRoundTrip(t *testing.T) {
	tomlDoc := "[commands.run.entries.default]\ncommand = 'run'\ntype = 'cargo'\n"

	yamlOut, err := TOMLToYAML([]byte(tomlDoc))
	require.NoError(t, err)

	tomlOut, err := YAMLToTOML(yamlOut)
	require.NoError(t, err)
	require.Contains(t, string(tomlOut), "command = 'run'")
}

func TestTOMLToYAML_Invalid(t *testing.T) {
	_, err := TOMLToYAML([]byte("[broken"))
	require.Error(t, err)
}

func TestYAMLToTOML_Invalid(t *testing.T) {
	_, err := YAMLToTOML([]byte(":\n  - ]"))
	require.Error(t, err)
}
