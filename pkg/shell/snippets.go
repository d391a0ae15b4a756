// Package shell renders the shell-facing side of the bootstrap: the
// rc-file integration snippet and the export statements a shell evals
// to absorb a captured environment.
package shell

import (
	"fmt"
	"strings"

	"github.com/jive-vlbi/ptboot/pkg/aips"
)

// Shell dialects ptboot can emit for.
const (
	DialectSh  = "sh"
	DialectCsh = "csh"
)

// GetIntegrationSnippet returns the line a user adds to their rc file
// so every new shell picks up the AIPS environment. The snippet
// guards on ptboot being installed, so shared rc files stay portable.
func GetIntegrationSnippet(dialect string) string {
	switch dialect {
	case DialectCsh:
		return `which ptboot >& /dev/null && eval ` + "`ptboot env --shell csh`"
	default:
		return `command -v ptboot >/dev/null && eval "$(ptboot env --shell sh)"`
	}
}

// FormatExports renders env as statements the given shell dialect can
// eval. Bourne shells get export assignments, csh gets setenv. Every
// variable is exported; the bootstrap's contract is that children
// inherit what it sets.
func FormatExports(env aips.Environment, dialect string) string {
	keys := env.Keys()
	var sb strings.Builder
	for _, key := range keys {
		value := quote(env.Get(key))
		switch dialect {
		case DialectCsh:
			fmt.Fprintf(&sb, "setenv %s %s;\n", key, value)
		default:
			fmt.Fprintf(&sb, "export %s=%s\n", key, value)
		}
	}
	return sb.String()
}

// quote single-quotes a value for eval, escaping embedded quotes.
func quote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
