package aips

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jive-vlbi/ptboot/pkg/logging"
	"github.com/jive-vlbi/ptboot/pkg/paths"
)

// Environment variable names owned by the bootstrap
const (
	// EnvQuietFlag suppresses verbose output from the
	// device-registration procedures; exported so child processes
	// inherit the same behavior
	EnvQuietFlag = "DADEVS_QUIET"

	// DefaultQuietValue is the quiet flag default
	DefaultQuietValue = "YES"
)

// MsgLoginMissing is the operator diagnostic printed when the login
// procedure cannot be found.
const MsgLoginMissing = "ptboot: %s not found; please set up your AIPS environment manually\n"

// Options configures an Initializer.
type Options struct {
	// LoginScript is the AIPS login procedure. Defaults to
	// paths.DefaultLoginScript.
	LoginScript string

	// QuietValue overrides the DADEVS_QUIET default.
	QuietValue string

	// Diagnostics receives operator-facing warnings. Defaults to
	// os.Stderr.
	Diagnostics io.Writer

	// Source overrides how scripts are sourced. Defaults to a
	// ScriptContributor per script.
	Source func(path string) Contributor
}

// Initializer establishes the AIPS environment. It is safe to invoke
// any number of times: the login procedure runs only while AIPS_ROOT
// is empty, while device registration reruns on every invocation that
// ends with AIPS_ROOT set.
type Initializer struct {
	loginScript string
	quietValue  string
	diagnostics io.Writer
	source      func(path string) Contributor
}

// NewInitializer creates an Initializer from opts.
func NewInitializer(opts Options) *Initializer {
	if opts.LoginScript == "" {
		opts.LoginScript = paths.DefaultLoginScript
	}
	if opts.QuietValue == "" {
		opts.QuietValue = DefaultQuietValue
	}
	if opts.Diagnostics == nil {
		opts.Diagnostics = os.Stderr
	}
	if opts.Source == nil {
		opts.Source = func(path string) Contributor {
			return &ScriptContributor{Path: path}
		}
	}
	return &Initializer{
		loginScript: opts.LoginScript,
		quietValue:  opts.QuietValue,
		diagnostics: opts.Diagnostics,
		source:      opts.Source,
	}
}

// Capture runs the bootstrap against env and returns the resulting
// environment without touching ambient process state.
//
// Phase one: while AIPS_ROOT is empty, source the login procedure. A
// missing login script is not fatal; the operator gets a diagnostic
// and the bootstrap carries on, since the variables may have been set
// some other way. Phase two: whenever AIPS_ROOT ends up non-empty,
// default and export the quiet flag, then source the data-area and
// printer registration scripts from the version tree. Errors raised
// inside sourced scripts propagate to the caller.
func (in *Initializer) Capture(ctx context.Context, env Environment) (Environment, error) {
	logger := logging.GetLogger("aips.init")
	env = env.Clone()

	if env.Get(paths.EnvAipsRoot) == "" {
		if _, err := os.Stat(in.loginScript); err != nil {
			logger.Warn().Str("script", in.loginScript).Msg("AIPS login procedure not found")
			fmt.Fprintf(in.diagnostics, MsgLoginMissing, in.loginScript)
		} else {
			logger.Info().Str("script", in.loginScript).Msg("Sourcing AIPS login procedure")
			next, err := in.source(in.loginScript).Contribute(ctx, env)
			if err != nil {
				return nil, err
			}
			env = next
		}
	} else {
		logger.Debug().Str(paths.EnvAipsRoot, env.Get(paths.EnvAipsRoot)).Msg("AIPS environment already initialized")
	}

	if env.Get(paths.EnvAipsRoot) == "" {
		return env, nil
	}

	if _, ok := env.Lookup(EnvQuietFlag); !ok {
		env.Set(EnvQuietFlag, in.quietValue)
	}

	for _, script := range paths.DeviceScriptPaths(env.Get(paths.EnvAipsVersion)) {
		logger.Debug().Str("script", script).Msg("Registering devices")
		next, err := in.source(script).Contribute(ctx, env)
		if err != nil {
			return nil, err
		}
		env = next
	}

	return env, nil
}

// Bootstrap runs Capture against the ambient process environment and
// applies the result back to it. This is the shell-parity mode used
// by long-lived processes such as the ParselTongue proxy server.
func (in *Initializer) Bootstrap(ctx context.Context) error {
	env, err := in.Capture(ctx, FromOS())
	if err != nil {
		return err
	}
	return env.Apply()
}
