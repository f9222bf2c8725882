package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/tmajors/runr/internal/config"
	"github.com/tmajors/runr/internal/errors"
	"github.com/tmajors/runr/internal/store"
)

// fsys is the filesystem commands operate on. Tests swap in a memory
// filesystem.
var fsys afero.Fs = afero.NewOsFs()

// configPath resolves the effective config file path: the --config flag
// wins, then the settings file / RUNR_CONFIG_PATH, then the XDG default
// (chosen by config.Load when this returns "").
func configPath() string {
	if configFlag != "" {
		return configFlag
	}
	if settings != nil && settings.ConfigPath != "" {
		return settings.ConfigPath
	}
	return ""
}

// loadConfig loads the command document with the effective settings.
func loadConfig() (*config.Config, error) {
	var opts []config.LoadOption
	if settings != nil {
		opts = settings.LoadOptions()
	}

	cfg, err := config.Load(store.New(fsys), configPath(), opts...)
	if err != nil {
		return nil, errors.NewConfigError(err)
	}
	return cfg, nil
}

// saveConfig persists cfg, translating failures into system errors.
func saveConfig(cfg *config.Config) error {
	if err := cfg.Save(); err != nil {
		return errors.NewSystemError(err, "check permissions on "+cfg.Path())
	}
	return nil
}

// parseEnv parses KEY=VALUE assignments into a map.
func parseEnv(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	env := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return nil, errors.NewUserError(
				fmt.Errorf("malformed environment entry %q", pair),
				"environment entries must look like KEY=VALUE")
		}
		env[k] = v
	}
	return env, nil
}

// splitParams splits a comma-separated parameter string, trimming
// whitespace and dropping empty elements.
func splitParams(s string) []string {
	if s == "" {
		return nil
	}
	var params []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			params = append(params, p)
		}
	}
	return params
}

// sortedEnvKeys returns env's keys in sorted order for stable output.
func sortedEnvKeys(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// truncate shortens a string to maxLen runes, adding "..." if
// truncated. Counting runes keeps multi-byte commands from being cut
// mid-character.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
