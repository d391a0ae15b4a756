package ptboot

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort     = "AIPS environment bootstrap and ParselTongue launcher installer"
	MsgEnvShort      = "Print shell statements that establish the AIPS environment"
	MsgGenerateShort = "Generate launcher scripts from their templates"
	MsgSnippetShort  = "Output the rc-file integration snippet"
	MsgDisksShort    = "List the AIPS data areas registered in the environment"
	MsgGenConfShort  = "Write a commented default configuration file"
	MsgVersionShort  = "Print version information"

	// Status messages
	MsgGeneratedFormat = "  ✓ %s\n"
	MsgNoDisks         = "No data areas registered. Run the bootstrap first."
	MsgWroteConfig     = "Wrote %s\n"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrBootstrap  = "failed to initialize AIPS environment: %w"
	MsgErrGenerate   = "failed to generate launcher scripts: %w"
	MsgErrGenConfig  = "failed to generate configuration: %w"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Configuration file (default: XDG config dir, then ./ptboot.toml)"
	MsgFlagShell   = "Shell dialect to emit (sh, csh)"
	MsgFlagLogin   = "AIPS login procedure to source"
	MsgFlagAll     = "Emit the whole resulting environment, not just the changes"
	MsgFlagWrite   = "Write the file to the config directory instead of stdout"
)

// MsgRootLong is the root command help text.
const MsgRootLong = `ptboot prepares a machine to run ParselTongue, the Python interface
to classic AIPS.

It does two jobs. "ptboot env" establishes the AIPS process
environment the way an AIPS login shell would: it sources LOGIN.SH
once, then registers data and printer devices from the version tree
on every call. "ptboot generate" turns the .in launcher templates
into installed, executable scripts with the build paths substituted
in.

Add the output of "ptboot snippet" to your shell rc file to pick up
the environment in every session.`
