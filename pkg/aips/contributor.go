package aips

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/jive-vlbi/ptboot/pkg/errors"
	"github.com/jive-vlbi/ptboot/pkg/logging"
)

// scriptPathVar carries the script path into the shell so the path
// never has to be quoted into the command line.
const scriptPathVar = "PTBOOT_SOURCE_SCRIPT"

// Contributor applies an external environment contribution: given a
// working environment, it produces the environment that results from
// the contribution. AIPS login and device-registration procedures are
// modeled this way; their internals stay opaque.
type Contributor interface {
	// Name identifies the contributor in logs and errors.
	Name() string

	// Contribute returns the environment after the contribution.
	// The input environment must not be mutated.
	Contribute(ctx context.Context, env Environment) (Environment, error)
}

// ScriptContributor sources a Bourne shell script in a child shell
// and captures the variable set it leaves behind. Sourcing happens in
// the child's own scope; the captured variables are what the script
// would have exported into a login shell.
type ScriptContributor struct {
	// Path is the script to source.
	Path string
}

// Name returns the script path.
func (c *ScriptContributor) Name() string {
	return c.Path
}

// Contribute sources the script and returns the resulting variable
// set. A missing script or a script that exits non-zero while being
// sourced surfaces as an error carrying the shell's stderr.
func (c *ScriptContributor) Contribute(ctx context.Context, env Environment) (Environment, error) {
	logger := logging.GetLogger("aips.source")

	scriptPath, err := filepath.Abs(c.Path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrEnvSource,
			"cannot resolve script path %s", c.Path)
	}

	// Source in the current shell scope, then dump the environment
	// NUL-separated so values with newlines survive the round trip.
	cmd := exec.CommandContext(ctx, "sh", "-c", `. "$`+scriptPathVar+`" && env -0`)

	childEnv := env.Clone()
	childEnv.Set(scriptPathVar, scriptPath)
	cmd.Env = childEnv.Slice()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug().Str("script", scriptPath).Msg("Sourcing script")

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrEnvSource,
			"sourcing %s failed: %s", scriptPath, strings.TrimSpace(stderr.String()))
	}

	captured := parseNulEnv(stdout.Bytes())
	delete(captured, scriptPathVar)

	logger.Debug().
		Str("script", scriptPath).
		Int("variables", len(captured)).
		Msg("Captured environment")

	return captured, nil
}

// parseNulEnv parses a NUL-separated env(1) dump.
func parseNulEnv(raw []byte) Environment {
	entries := strings.Split(string(raw), "\x00")
	return FromSlice(entries)
}
