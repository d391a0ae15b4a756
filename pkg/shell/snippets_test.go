package shell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jive-vlbi/ptboot/pkg/aips"
	"github.com/jive-vlbi/ptboot/pkg/shell"
)

func TestGetIntegrationSnippet(t *testing.T) {
	tests := []struct {
		name     string
		dialect  string
		expected string
	}{
		{
			name:     "sh",
			dialect:  "sh",
			expected: `command -v ptboot >/dev/null && eval "$(ptboot env --shell sh)"`,
		},
		{
			name:     "csh",
			dialect:  "csh",
			expected: "which ptboot >& /dev/null && eval `ptboot env --shell csh`",
		},
		{
			name:     "unknown_dialect_defaults_to_sh",
			dialect:  "fish",
			expected: `command -v ptboot >/dev/null && eval "$(ptboot env --shell sh)"`,
		},
		{
			name:     "empty_dialect_defaults_to_sh",
			dialect:  "",
			expected: `command -v ptboot >/dev/null && eval "$(ptboot env --shell sh)"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shell.GetIntegrationSnippet(tt.dialect))
		})
	}
}

func TestFormatExportsSh(t *testing.T) {
	env := aips.Environment{
		"AIPS_ROOT":    "/opt/aips",
		"DADEVS_QUIET": "YES",
	}

	out := shell.FormatExports(env, shell.DialectSh)

	assert.Equal(t, "export AIPS_ROOT='/opt/aips'\nexport DADEVS_QUIET='YES'\n", out)
}

func TestFormatExportsCsh(t *testing.T) {
	env := aips.Environment{"AIPS_ROOT": "/opt/aips"}

	out := shell.FormatExports(env, shell.DialectCsh)

	assert.Equal(t, "setenv AIPS_ROOT '/opt/aips';\n", out)
}

func TestFormatExportsQuoting(t *testing.T) {
	env := aips.Environment{
		"SPACED": "value with spaces",
		"QUOTED": "it's quoted",
	}

	out := shell.FormatExports(env, shell.DialectSh)

	assert.Contains(t, out, "export QUOTED='it'\\''s quoted'\n")
	assert.Contains(t, out, "export SPACED='value with spaces'\n")
}

func TestFormatExportsEmptyEnvironment(t *testing.T) {
	assert.Equal(t, "", shell.FormatExports(aips.Environment{}, shell.DialectSh))
}
