package commands

import (
	"reflect"
	"testing"
	"unicode/utf8"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/tmajors/runr/internal/config"
)

// setupTest swaps the package filesystem for an in-memory one, points
// the config flag at a scratch path and resets all command flags. The
// originals are restored when the test finishes.
func setupTest(t *testing.T) string {
	t.Helper()

	origFsys := fsys
	origConfigFlag := configFlag
	origSettings := settings

	fsys = afero.NewMemMapFs()
	configFlag = "/home/test/.config/runr/runr.toml"
	settings = &config.Settings{SeedDefaults: true}

	resetFlags(initCmd, setCmd, defaultCmd, exportCmd, importCmd, restoreCmd)

	t.Cleanup(func() {
		fsys = origFsys
		configFlag = origConfigFlag
		settings = origSettings
		resetFlags(initCmd, setCmd, defaultCmd, exportCmd, importCmd, restoreCmd)
	})

	return configFlag
}

// resetFlags restores every flag of the given commands to its default
// value and clears its changed state, since cobra command vars are
// package globals shared across tests.
func resetFlags(cmds ...interface{ Flags() *pflag.FlagSet }) {
	for _, cmd := range cmds {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
}

// setFlag sets a flag through pflag so its changed state is recorded,
// the same way real CLI parsing would.
func setFlag(t *testing.T, fs *pflag.FlagSet, name, value string) {
	t.Helper()
	if err := fs.Set(name, value); err != nil {
		t.Fatalf("setting flag %s: %v", name, err)
	}
}

func TestParseEnv(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []string
		want    map[string]string
		wantErr bool
	}{
		{
			name:  "empty",
			pairs: nil,
			want:  nil,
		},
		{
			name:  "single pair",
			pairs: []string{"FOO=bar"},
			want:  map[string]string{"FOO": "bar"},
		},
		{
			name:  "value with equals",
			pairs: []string{"URL=http://x?a=b"},
			want:  map[string]string{"URL": "http://x?a=b"},
		},
		{
			name:  "empty value",
			pairs: []string{"FOO="},
			want:  map[string]string{"FOO": ""},
		},
		{
			name:    "missing equals",
			pairs:   []string{"FOO"},
			wantErr: true,
		},
		{
			name:    "empty key",
			pairs:   []string{"=bar"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseEnv(tt.pairs)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseEnv() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseEnv() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSplitParams(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "single", input: "--workspace", want: []string{"--workspace"}},
		{name: "multiple", input: "--,--nocapture", want: []string{"--", "--nocapture"}},
		{name: "trims whitespace", input: " a , b ", want: []string{"a", "b"}},
		{name: "drops empty elements", input: "a,,b,", want: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitParams(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitParams(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate() = %q, want %q", got, "short")
	}
	if got := truncate("a long command string", 10); got != "a long ..." {
		t.Errorf("truncate() = %q, want %q", got, "a long ...")
	}
	if got := truncate("прогон тестов целиком", 10); got != "прогон ..." {
		t.Errorf("truncate() = %q, want %q", got, "прогон ...")
	}
	if !utf8.ValidString(truncate("échantillon très long", 12)) {
		t.Error("truncate() produced invalid UTF-8")
	}
}
