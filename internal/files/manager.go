package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644

	// ConfigFileName is the settings file under the base directory.
	ConfigFileName = "config.yaml"
	// EnvFileName is an optional dotenv file read before the environment.
	EnvFileName = ".env"
	// LogDirName holds the rotating log files.
	LogDirName = "logs"
)

// ErrExists is returned by WriteFile when the target is present and overwrite
// was not requested.
var ErrExists = errors.New("file already exists")

// Manager centralizes where ajanda keeps its files on disk.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ResolveBasePath.
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the root directory.
func (m *Manager) BasePath() string {
	return m.basePath
}

// ConfigPath is the default config file location.
func (m *Manager) ConfigPath() string {
	return filepath.Join(m.basePath, ConfigFileName)
}

// EnvPath is the dotenv file next to the config.
func (m *Manager) EnvPath() string {
	return filepath.Join(m.basePath, EnvFileName)
}

// LogDir is where the logger writes.
func (m *Manager) LogDir() string {
	return filepath.Join(m.basePath, LogDirName)
}

// WriteFile creates the parent directories and writes data to path. An existing
// file is left alone unless overwrite is set.
func (m *Manager) WriteFile(path string, data []byte, overwrite bool) error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	file, err := os.OpenFile(path, flags, filePermissions)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%s: %w", path, ErrExists)
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
