package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tmajors/runr/cmd"
)

func TestVersionCommand_Metadata(t *testing.T) {
	if versionCmd.Use != "version" {
		t.Errorf("Use = %q, want %q", versionCmd.Use, "version")
	}
	if versionCmd.Short == "" {
		t.Error("Short description should not be empty")
	}
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	printVersion(&buf)

	output := buf.String()
	if !strings.Contains(output, "runr version "+cmd.Version) {
		t.Errorf("output = %q, want version line", output)
	}
	if !strings.Contains(output, "commit: "+cmd.Commit) {
		t.Errorf("output = %q, want commit line", output)
	}
	if !strings.Contains(output, "built:  "+cmd.Date) {
		t.Errorf("output = %q, want build date line", output)
	}
}

func TestVersionFlag_UsesBuildVersion(t *testing.T) {
	if rootCmd.Version != cmd.Version {
		t.Errorf("rootCmd.Version = %q, want the build-time version %q", rootCmd.Version, cmd.Version)
	}
}
