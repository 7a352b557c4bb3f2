package paths

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for iconrules
	EnvConfigDir = "ICONRULES_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for iconrules-specific files
	AppDirName = "iconrules"

	// SettingsFile is the IDE-level settings file inside the config dir
	SettingsFile = "settings.toml"

	// ProjectSettingsFile is the project-level settings file in a project root
	ProjectSettingsFile = ".iconrules.toml"

	// PacksDir is the subdirectory of the config dir holding installed icon packs
	PacksDir = "packs"
)

// ConfigDir returns the directory holding IDE-level settings.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// SettingsPath returns the IDE-level settings file path.
func SettingsPath() string {
	return filepath.Join(ConfigDir(), SettingsFile)
}

// PacksPath returns the directory of installed icon packs.
func PacksPath() string {
	return filepath.Join(ConfigDir(), PacksDir)
}

// ProjectSettingsPath returns the project-level settings file for a project root.
func ProjectSettingsPath(projectBase string) string {
	return filepath.Join(projectBase, ProjectSettingsFile)
}

// Normalize lower-cases p and turns backslashes into slashes.
func Normalize(p string) string {
	return strings.ReplaceAll(strings.ToLower(p), `\`, "/")
}

// Split returns the lower-cased parent directory name, file name and full
// path of p. The parent name is empty when p has no parent.
func Split(p string) (parentName, fileName, fullPath string) {
	fullPath = Normalize(p)
	trimmed := strings.TrimSuffix(fullPath, "/")
	if trimmed == "" {
		return "", "", fullPath
	}
	fileName = path.Base(trimmed)
	dir := path.Dir(trimmed)
	if dir != "." && dir != "/" {
		parentName = path.Base(dir)
	}
	return parentName, fileName, fullPath
}

// RelativeTo returns fullPath relative to base, both normalised. ok is
// false when fullPath is not strictly below base.
func RelativeTo(base, fullPath string) (rel string, ok bool) {
	base = strings.TrimSuffix(Normalize(base), "/")
	fullPath = Normalize(fullPath)
	if base == "" || !strings.HasPrefix(fullPath, base) || len(fullPath) <= len(base)+1 {
		return "", false
	}
	if fullPath[len(base)] != '/' {
		return "", false
	}
	return fullPath[len(base)+1:], true
}

// expandHome expands ~ to the home directory
func expandHome(p string) string {
	if p == "" || p[0] != '~' {
		return p
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return p
		}
	}

	if p == "~" {
		return homeDir
	}
	if p[1] == '/' || p[1] == filepath.Separator {
		return filepath.Join(homeDir, p[2:])
	}
	return p
}
