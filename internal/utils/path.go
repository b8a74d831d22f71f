package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver finds data and config locations relative to the running binary
type PathResolver struct {
	executableDir string
	configDir     string
}

// NewPathResolver creates a resolver anchored at the executable's real location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		configDir:     ConfigDir(),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", pr.executableDir, pr.configDir)
	return pr, nil
}

// ConfigDir returns the platform config directory shared by the config file
// and the data fallback.
func ConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}
	return configDirFor(homeDir)
}

// configDirFor returns the platform config directory for wordvocab
func configDirFor(homeDir string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "wordvocab")
		}
		return filepath.Join(homeDir, ".config", "wordvocab")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "wordvocab")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "wordvocab")
	default:
		return filepath.Join(homeDir, ".config", "wordvocab")
	}
}

// GetDataDir resolves the directory holding wordList. Candidates, in order:
// 1. dataDir itself when absolute
// 2. dataDir relative to the executable
// 3. dataDir relative to the working directory
// 4. <configDir>/data
// When nothing holds the list, the executable relative path is returned for error reporting.
func (pr *PathResolver) GetDataDir(dataDir, wordList string) string {
	var candidates []string
	if filepath.IsAbs(dataDir) {
		candidates = append(candidates, dataDir)
	}
	execRelative := filepath.Join(pr.executableDir, dataDir)
	candidates = append(candidates, execRelative)
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, dataDir))
	}
	candidates = append(candidates, filepath.Join(pr.configDir, "data"))

	for _, dir := range candidates {
		if FileExists(filepath.Join(dir, wordList)) {
			log.Debugf("Found word list in: %s", dir)
			return dir
		}
		log.Debugf("Data directory candidate not valid: %s", dir)
	}
	return execRelative
}
