// Package paths provides centralized path handling for ptboot.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for ptboot
	EnvConfigDir = "PTBOOT_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for ptboot
	EnvStateDir = "PTBOOT_STATE_DIR"

	// EnvAipsRoot is the AIPS installation root, the "already
	// initialized" gate for the environment bootstrap
	EnvAipsRoot = "AIPS_ROOT"

	// EnvAipsVersion points at the active AIPS version tree
	EnvAipsVersion = "AIPS_VERSION"
)

// Default directories and files
const (
	// AppDirName is the directory name for ptboot-specific files
	AppDirName = "ptboot"

	// ConfigFileName is the name of the configuration file
	ConfigFileName = "ptboot.toml"

	// LogFileName is the name of the log file
	LogFileName = "ptboot.log"

	// DefaultLoginScript is the well-known AIPS login procedure path
	DefaultLoginScript = "/usr/local/aips/LOGIN.SH"
)

// Paths provides centralized path management for ptboot
type Paths struct {
	configDir string
	stateDir  string
}

// New creates a Paths instance, honoring the PTBOOT_* overrides and
// falling back to the XDG base directories.
func New() *Paths {
	configDir := os.Getenv(EnvConfigDir)
	if configDir == "" {
		configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	stateDir := os.Getenv(EnvStateDir)
	if stateDir == "" {
		stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	return &Paths{
		configDir: configDir,
		stateDir:  stateDir,
	}
}

// ConfigDir returns the directory holding ptboot.toml
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// StateDir returns the directory holding runtime state (log file)
func (p *Paths) StateDir() string {
	return p.stateDir
}

// ConfigFilePath returns the primary configuration file path
func (p *Paths) ConfigFilePath() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// LogFilePath returns the log file path
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// ConfigFileCandidates returns the configuration file locations in
// load order: the XDG config file first, then one in the current
// directory (useful inside a build tree).
func (p *Paths) ConfigFileCandidates() []string {
	return []string{
		p.ConfigFilePath(),
		ConfigFileName,
	}
}

// DeviceScriptPaths returns the device-registration scripts for the
// given AIPS version tree, in the order they must be sourced: data
// areas first, printers second.
func DeviceScriptPaths(versionRoot string) []string {
	return []string{
		filepath.Join(versionRoot, "SYSTEM", "UNIX", "DADEVS.SH"),
		filepath.Join(versionRoot, "SYSTEM", "UNIX", "PRDEVS.SH"),
	}
}
