// Package config loads application settings and normalizes user-supplied
// paths such as the database location.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath resolves a path from config or flags: a leading ~ becomes the
// user's home directory and $VAR references are expanded. Paths that need
// neither are returned unchanged.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}

	return os.ExpandEnv(path)
}
