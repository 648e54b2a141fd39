// Package paths resolves configuration and data directory locations.
package paths

import (
	"os"
	"path/filepath"
)

// CWD-relative directory names used when nothing overrides them.
const (
	DefaultConfigDirName = ".aac"
	DefaultDataDirName   = ".aac-data"
)

// workingDir returns the current directory. Tests may override it.
var workingDir = os.Getwd

// ResolveConfigDir returns the configuration directory: the flag value when
// set, otherwise $(CWD)/.aac. The result is always absolute.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	return cwdJoin(DefaultConfigDirName)
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > configYAMLValue > $(CWD)/.aac-data. The result is always absolute.
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	return cwdJoin(DefaultDataDirName)
}

func cwdJoin(name string) (string, error) {
	cwd, err := workingDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, name), nil
}
