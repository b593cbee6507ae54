package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for waterws.
type Paths struct {
	// ConfigFile is the path to the config file (~/.waterws/config.yaml).
	ConfigFile string

	// HomeDir is the waterws home directory (~/.waterws).
	HomeDir string
}

// DefaultPaths returns the default paths for waterws.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	wsHome := filepath.Join(homeDir, ".waterws")

	return &Paths{
		ConfigFile: filepath.Join(wsHome, "config.yaml"),
		HomeDir:    wsHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If WATERWS_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("WATERWS_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// GetHomeDir returns the waterws home directory path.
func GetHomeDir() (string, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.HomeDir, nil
}

// EnsureHomeDir creates the waterws home directory if it doesn't exist.
func EnsureHomeDir() error {
	homeDir, err := GetHomeDir()
	if err != nil {
		return err
	}

	return os.MkdirAll(homeDir, 0o755)
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// Handle ~username (not supported, return as-is)
	return path, nil
}
