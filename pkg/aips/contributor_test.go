// pkg/aips/contributor_test.go
// TEST TYPE: Integration Tests (spawns /bin/sh)
// PURPOSE: Sourcing real shell scripts and capturing their variables.

package aips_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jive-vlbi/ptboot/pkg/aips"
	"github.com/jive-vlbi/ptboot/pkg/errors"
)

func writeScript(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestScriptContributorCapturesVariables(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a Bourne shell")
	}

	script := writeScript(t, "LOGIN.SH", `
AIPS_ROOT=/opt/aips
export AIPS_ROOT
SPACED="value with spaces"
export SPACED
`)

	contributor := &aips.ScriptContributor{Path: script}
	env, err := contributor.Contribute(context.Background(), aips.Environment{"KEEP": "me"})

	require.NoError(t, err)
	assert.Equal(t, "/opt/aips", env.Get("AIPS_ROOT"))
	assert.Equal(t, "value with spaces", env.Get("SPACED"))
	// Variables from the working environment flow through.
	assert.Equal(t, "me", env.Get("KEEP"))
}

func TestScriptContributorSeesWorkingEnvironment(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a Bourne shell")
	}

	// DADEVS.SH-style script that derives state from AIPS_VERSION.
	script := writeScript(t, "DADEVS.SH", `
DA01="$AIPS_VERSION/DATA"
export DA01
`)

	contributor := &aips.ScriptContributor{Path: script}
	env, err := contributor.Contribute(context.Background(), aips.Environment{
		"AIPS_VERSION": "/opt/aips/31DEC24",
	})

	require.NoError(t, err)
	assert.Equal(t, "/opt/aips/31DEC24/DATA", env.Get("DA01"))
}

func TestScriptContributorMissingScript(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a Bourne shell")
	}

	contributor := &aips.ScriptContributor{
		Path: filepath.Join(t.TempDir(), "no-such-script.SH"),
	}
	_, err := contributor.Contribute(context.Background(), aips.Environment{})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEnvSource))
}

func TestScriptContributorFailingScript(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a Bourne shell")
	}

	script := writeScript(t, "BROKEN.SH", `
echo "device registration failed" >&2
false
`)

	contributor := &aips.ScriptContributor{Path: script}
	_, err := contributor.Contribute(context.Background(), aips.Environment{})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEnvSource))
	assert.Contains(t, err.Error(), "device registration failed")
}
