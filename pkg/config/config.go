// Package config loads ptboot's layered configuration: built-in
// defaults, the embedded defaults.toml, an optional ptboot.toml, and
// finally PTBOOT_* environment variables, each layer overriding the
// previous one.
package config

import (
	"github.com/jive-vlbi/ptboot/pkg/installer"
	"github.com/jive-vlbi/ptboot/pkg/paths"
)

// Config is the full ptboot configuration.
type Config struct {
	Aips    AipsConfig    `koanf:"aips"`
	Install InstallConfig `koanf:"install"`
}

// AipsConfig configures the environment bootstrap.
type AipsConfig struct {
	// Login is the AIPS login procedure sourced while AIPS_ROOT is
	// empty.
	Login string `koanf:"login"`

	// Quiet is the DADEVS_QUIET value exported when the variable is
	// unset.
	Quiet string `koanf:"quiet"`
}

// InstallConfig configures launcher generation.
type InstallConfig struct {
	// Datadir is where the package data is installed.
	Datadir string `koanf:"datadir"`

	// Version is the package version substituted into launchers.
	Version string `koanf:"version"`

	// Python is the interpreter the launchers invoke.
	Python string `koanf:"python"`

	// Pythonpath is an extra module search path for the launchers.
	Pythonpath string `koanf:"pythonpath"`

	// Templates is the directory holding the .in templates.
	Templates string `koanf:"templates"`

	// Bindir is where generated launchers are installed.
	Bindir string `koanf:"bindir"`

	// Scripts overrides the standard launcher set.
	Scripts []installer.Script `koanf:"scripts"`
}

// Vars returns the substitution values for the template engine.
func (c InstallConfig) Vars() installer.Vars {
	return installer.Vars{
		DataDir:         c.Datadir,
		Version:         c.Version,
		Python:          c.Python,
		ExtraPythonPath: c.Pythonpath,
	}
}

// ScriptSet returns the configured launcher pairs, falling back to
// the standard set under Templates and Bindir.
func (c InstallConfig) ScriptSet() []installer.Script {
	if len(c.Scripts) > 0 {
		return c.Scripts
	}
	return installer.DefaultScripts(c.Templates, c.Bindir)
}

// systemDefaults is the last-resort configuration, below even the
// embedded defaults.toml.
func systemDefaults() map[string]interface{} {
	return map[string]interface{}{
		"aips.login":         paths.DefaultLoginScript,
		"aips.quiet":         "YES",
		"install.datadir":    "/usr/local/share/parseltongue",
		"install.python":     "/usr/bin/python3",
		"install.templates":  ".",
		"install.bindir":     "/usr/local/bin",
		"install.version":    "",
		"install.pythonpath": "",
	}
}
