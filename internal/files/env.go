package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDirName defines the folder under the user's home directory.
	DefaultDirName = ".ajanda"

	// HomeEnv overrides the base directory.
	HomeEnv = "AJANDA_HOME"
)

// ResolveBasePath determines where ajanda keeps its config and logs, defaulting
// to ~/.ajanda. The location can be overridden by exporting AJANDA_HOME.
func ResolveBasePath() (string, error) {
	if override, ok := os.LookupEnv(HomeEnv); ok {
		override = strings.TrimSpace(override)
		if override != "" {
			return ExpandHome(override)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName), nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(input string) (string, error) {
	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return input, nil
}
