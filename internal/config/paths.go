// ABOUTME: Standard filesystem paths for termpix configuration and palette files
// ABOUTME: Resolves ~/.termpix/ for global and .termpix/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const dirName = ".termpix"

// GlobalDir returns the user-global config directory (~/.termpix/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", dirName)
	}
	return filepath.Join(home, dirName)
}

// ProjectDir returns the project-local config directory (.termpix/ in projectRoot).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, dirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), "config.yaml")
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), "config.yaml")
}

// PaletteDirs returns the directories searched for named palette files,
// project-local first.
func PaletteDirs(projectRoot string) []string {
	return []string{
		filepath.Join(ProjectDir(projectRoot), "palettes"),
		filepath.Join(GlobalDir(), "palettes"),
	}
}

// FindPalette returns the first palettes/<name>.yaml that exists, or ""
// when none does.
func FindPalette(projectRoot, name string) string {
	for _, dir := range PaletteDirs(projectRoot) {
		path := filepath.Join(dir, name+".yaml")
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
