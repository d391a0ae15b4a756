package config

import (
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/jive-vlbi/ptboot/pkg/errors"
)

// GenerateConfigContent renders a starter ptboot.toml: the default
// values, each commented out so the file documents the knobs without
// pinning them.
func GenerateConfigContent() (string, error) {
	defaults := map[string]interface{}{}
	for key, value := range systemDefaults() {
		section, name, _ := strings.Cut(key, ".")
		sub, ok := defaults[section].(map[string]interface{})
		if !ok {
			sub = map[string]interface{}{}
			defaults[section] = sub
		}
		sub[name] = value
	}

	rendered, err := gotoml.Marshal(defaults)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render default config")
	}

	return commentOutConfigValues(string(rendered)), nil
}

// commentOutConfigValues comments out every assignment line, keeping
// blank lines, comments and section headers as-is.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
