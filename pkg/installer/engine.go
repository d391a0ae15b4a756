// Package installer turns launcher templates into installed,
// executable scripts. Substitution is literal: the four autoconf
// style tokens a template may carry are replaced with configured
// build values, nothing else is interpreted.
package installer

import (
	"os"
	"strings"

	"github.com/jive-vlbi/ptboot/pkg/errors"
	"github.com/jive-vlbi/ptboot/pkg/logging"
)

// The recognized placeholder tokens. Exactly these four; templates
// carrying anything else pass through untouched.
const (
	TokenDataDir         = "@datadir@"
	TokenVersion         = "@version@"
	TokenPython          = "@PYTHON@"
	TokenExtraPythonPath = "@extra_pythonpath@"
)

// tmpSuffix is appended to the output name while a script is being
// generated; the rename to the final name happens last.
const tmpSuffix = ".tmp"

// Vars holds the build-configuration values substituted into
// templates.
type Vars struct {
	// DataDir is where the package data is installed (@datadir@).
	DataDir string

	// Version is the package version string (@version@).
	Version string

	// Python is the interpreter the launchers invoke (@PYTHON@).
	Python string

	// ExtraPythonPath is an additional module search path spliced
	// into the launchers (@extra_pythonpath@).
	ExtraPythonPath string
}

// Script is one template/output pair.
type Script struct {
	// Template is the .in input file.
	Template string `koanf:"template"`

	// Output is the installed launcher path.
	Output string `koanf:"output"`
}

// Substitute replaces the four recognized tokens in content with the
// configured values.
func Substitute(content string, vars Vars) string {
	replacer := strings.NewReplacer(
		TokenDataDir, vars.DataDir,
		TokenVersion, vars.Version,
		TokenPython, vars.Python,
		TokenExtraPythonPath, vars.ExtraPythonPath,
	)
	return replacer.Replace(content)
}

// Engine generates launcher scripts. One engine serves any number of
// template/output pairs.
type Engine struct {
	vars Vars
}

// NewEngine creates an Engine with the given substitution values.
func NewEngine(vars Vars) *Engine {
	return &Engine{vars: vars}
}

// Render generates one launcher script from its template.
//
// The substituted content is produced in memory before any filesystem
// mutation, so a missing or unreadable template leaves a previously
// generated output untouched. The filesystem sequence then runs in
// strict order: remove the final name, write to a temporary name,
// mark executable, drop the write bits, rename into place. Nothing
// ever appears under the final name until it is complete, executable
// and read-only.
func (e *Engine) Render(script Script) error {
	logger := logging.GetLogger("installer.engine")

	raw, err := os.ReadFile(script.Template)
	if err != nil {
		return errors.Wrapf(err, errors.ErrTemplateRead,
			"cannot read template %s", script.Template)
	}
	rendered := Substitute(string(raw), e.vars)

	if err := os.Remove(script.Output); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrFileAccess,
			"cannot remove previous output %s", script.Output)
	}

	tmpPath := script.Output + tmpSuffix
	if err := os.WriteFile(tmpPath, []byte(rendered), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate,
			"cannot write %s", tmpPath)
	}

	if err := os.Chmod(tmpPath, 0755); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrapf(err, errors.ErrFileAccess,
			"cannot make %s executable", tmpPath)
	}

	if err := os.Chmod(tmpPath, 0555); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrapf(err, errors.ErrFileAccess,
			"cannot write-protect %s", tmpPath)
	}

	if err := os.Rename(tmpPath, script.Output); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrapf(err, errors.ErrFileRename,
			"cannot rename %s to %s", tmpPath, script.Output)
	}

	logger.Info().
		Str("template", script.Template).
		Str("output", script.Output).
		Msg("Generated launcher script")

	return nil
}

// GenerateAll renders every script in order, stopping at the first
// failure.
func (e *Engine) GenerateAll(scripts []Script) error {
	logger := logging.GetLogger("installer.engine")
	for _, script := range scripts {
		if err := e.Render(script); err != nil {
			return err
		}
	}
	logger.Info().Int("count", len(scripts)).Msg("Generated launcher scripts")
	return nil
}
