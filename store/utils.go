package store

import (
	"os"
	"path/filepath"

	"github.com/hamidzr/gscale/constant"
)

// CacheDir returns the directory device profiles are stored under.
func CacheDir() string {
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".cache", constant.ProjectName)
	}
	return filepath.Join(os.TempDir(), constant.ProjectName)
}
