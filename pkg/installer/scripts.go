package installer

import "path/filepath"

// Launcher script names installed by the package.
const (
	// ScriptParselTongue starts an interactive ParselTongue session.
	ScriptParselTongue = "parseltongue"

	// ScriptXMLRPC starts the XML-RPC proxy server that exposes
	// AIPS tasks and data on a remote host.
	ScriptXMLRPC = "ptxmlrpc"

	// ScriptRun runs a ParselTongue script non-interactively.
	ScriptRun = "ptrun"
)

// TemplateExt is the template file extension.
const TemplateExt = ".in"

// DefaultScripts returns the standard launcher set: each template in
// templateDir paired with its output in binDir.
func DefaultScripts(templateDir, binDir string) []Script {
	names := []string{ScriptParselTongue, ScriptXMLRPC, ScriptRun}
	scripts := make([]Script, 0, len(names))
	for _, name := range names {
		scripts = append(scripts, Script{
			Template: filepath.Join(templateDir, name+TemplateExt),
			Output:   filepath.Join(binDir, name),
		})
	}
	return scripts
}
