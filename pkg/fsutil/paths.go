package fsutil

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the name of the application used in paths.
	AppName = "memoria"
)

// GetStateDir returns the platform-specific state directory for the
// application, creating it if necessary. The dedup ledger, quota usage file
// and staging directories live here.
func GetStateDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(cacheDir, AppName)
	if err := os.MkdirAll(dir, DirModePrivate); err != nil {
		return "", err
	}
	return dir, nil
}

// GetConfigDir returns the platform-specific configuration directory for the
// application.
func GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, AppName), nil
}
