package config

import (
	"os"
	"path/filepath"

	"github.com/sandevgo/calcbot/internal/core"
)

// GetRuntimePath resolves CALC_RUNTIME_PATH; relative paths are taken from the home directory.
func GetRuntimePath() string {
	path := os.Getenv("CALC_RUNTIME_PATH")
	if path == "" {
		path = core.DefaultRuntime
	}

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}

func GetEnvPath() string {
	return filepath.Join(GetRuntimePath(), ".env")
}
