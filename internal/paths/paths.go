// Package paths resolves where runr keeps its files, following the
// XDG base directory spec.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "runr"

// ConfigFileName is the persisted command document's file name.
const ConfigFileName = "runr.toml"

// SettingsFileName is the tool settings file read by viper.
const SettingsFileName = "settings"

// DefaultDirPerm is the permission for newly created config directories.
const DefaultDirPerm = 0o700

// DefaultFilePerm is the permission for the persisted document.
const DefaultFilePerm = 0o600

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns runr's config directory: <ConfigHome>/runr
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the default path of the persisted command
// document: <ConfigHome>/runr/runr.toml
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// EnsureDir creates the directory and any necessary parents with the
// given permissions. If perm is 0, DefaultDirPerm is used. Idempotent.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}
