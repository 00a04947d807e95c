// Package where resolves the filesystem locations used by the application.
package where

import (
	"os"
	"path/filepath"

	"github.com/pencuri-cli/pencuri/constant"
	"github.com/pencuri-cli/pencuri/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the default configuration directory.
const EnvConfigPath = "PENCURI_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory, honoring PENCURI_CONFIG_PATH first
// and the platform user config directory otherwise.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base, err := os.UserConfigDir()
	if err != nil {
		base = filepath.Join(".", "config")
	}
	return ensureDir(filepath.Join(base, constant.Pencuri))
}

// Logs resolves the directory holding the rolling debug log.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// LogFile resolves the path of the rolling debug log.
func LogFile() string {
	return filepath.Join(Logs(), constant.LogFile)
}

// Extensions resolves the directory holding browser extensions for the enhanced player.
func Extensions() string {
	return ensureDir(filepath.Join(Config(), "extensions"))
}

// AdFilter resolves the default location of the unpacked ad-filter extension.
// The directory itself is not created; its absence disables the enhanced player.
func AdFilter() string {
	return filepath.Join(Extensions(), "ublock")
}

// Temp resolves a volatile directory for browser profiles and other transient artifacts.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Pencuri))
}
