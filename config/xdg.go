package config

import (
	"os"
	"path/filepath"
)

// XDGBaseDirs holds the XDG Base Directory Specification paths.
type XDGBaseDirs struct {
	ConfigHome string
	DataHome   string
	CacheHome  string
}

// GetXDGBaseDirs resolves the XDG base directories from the environment,
// falling back to the $HOME-relative defaults when the XDG_* variables are
// unset.
func GetXDGBaseDirs() XDGBaseDirs {
	return XDGBaseDirs{
		ConfigHome: xdgOr("XDG_CONFIG_HOME", ".config"),
		DataHome:   xdgOr("XDG_DATA_HOME", filepath.Join(".local", "share")),
		CacheHome:  xdgOr("XDG_CACHE_HOME", ".cache"),
	}
}

func xdgOr(envVar, homeRelative string) string {
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, homeRelative)
	}
	return ""
}

// GetAppConfigPaths returns namelink's config search paths in priority
// order: the XDG config directory, then a dotfile in $HOME, then the
// current directory.
func GetAppConfigPaths(appName string) []string {
	xdg := GetXDGBaseDirs()
	home := os.Getenv("HOME")

	var paths []string
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.yaml"))
	if home != "" {
		paths = append(paths, filepath.Join(home, "."+appName+".yaml"))
	}
	paths = append(paths, "./"+appName+".yaml")
	return paths
}
