package ptboot

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/jive-vlbi/ptboot/pkg/aips"
	"github.com/jive-vlbi/ptboot/pkg/config"
	"github.com/jive-vlbi/ptboot/pkg/installer"
	"github.com/jive-vlbi/ptboot/pkg/paths"
	"github.com/jive-vlbi/ptboot/pkg/shell"
	"github.com/jive-vlbi/ptboot/pkg/ui"
)

// newEnvCmd builds the env command: run the bootstrap in capture mode
// and print statements the calling shell can eval.
func newEnvCmd(configFile *string) *cobra.Command {
	var (
		dialect string
		login   string
		all     bool
	)

	cmd := &cobra.Command{
		Use:   "env",
		Short: MsgEnvShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configFile)
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}
			if login == "" {
				login = cfg.Aips.Login
			}

			initializer := aips.NewInitializer(aips.Options{
				LoginScript: login,
				QuietValue:  cfg.Aips.Quiet,
				Diagnostics: cmd.ErrOrStderr(),
			})

			base := aips.FromOS()
			result, err := initializer.Capture(cmd.Context(), base)
			if err != nil {
				return fmt.Errorf(MsgErrBootstrap, err)
			}

			out := result
			if !all {
				out = result.Diff(base)
			}
			fmt.Fprint(cmd.OutOrStdout(), shell.FormatExports(out, dialect))
			return nil
		},
	}

	cmd.Flags().StringVar(&dialect, "shell", shell.DialectSh, MsgFlagShell)
	cmd.Flags().StringVar(&login, "login", "", MsgFlagLogin)
	cmd.Flags().BoolVar(&all, "all", false, MsgFlagAll)

	return cmd
}

// newGenerateCmd builds the generate command: render the configured
// launcher templates. Optional args select launchers by output name.
func newGenerateCmd(configFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [launcher...]",
		Short: MsgGenerateShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configFile)
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}

			scripts := cfg.Install.ScriptSet()
			if len(args) > 0 {
				scripts = selectScripts(scripts, args)
				if len(scripts) == 0 {
					return fmt.Errorf("no configured launcher matches %v", args)
				}
			}

			engine := installer.NewEngine(cfg.Install.Vars())
			if err := engine.GenerateAll(scripts); err != nil {
				return fmt.Errorf(MsgErrGenerate, err)
			}

			for _, script := range scripts {
				fmt.Fprintf(cmd.OutOrStdout(), MsgGeneratedFormat, script.Output)
			}
			return nil
		},
	}

	return cmd
}

// selectScripts filters scripts whose output basename is in names.
func selectScripts(scripts []installer.Script, names []string) []installer.Script {
	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}
	var selected []installer.Script
	for _, script := range scripts {
		if wanted[filepath.Base(script.Output)] {
			selected = append(selected, script)
		}
	}
	return selected
}

// newSnippetCmd builds the snippet command: print the rc-file line.
func newSnippetCmd() *cobra.Command {
	var dialect string

	cmd := &cobra.Command{
		Use:   "snippet",
		Short: MsgSnippetShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), shell.GetIntegrationSnippet(dialect))
		},
	}

	cmd.Flags().StringVar(&dialect, "shell", shell.DialectSh, MsgFlagShell)

	return cmd
}

// newDisksCmd builds the disks command: list the data areas the
// device-registration scripts left in the ambient environment.
func newDisksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disks",
		Short: MsgDisksShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			disks := aips.Disks(aips.FromOS())
			if len(disks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), MsgNoDisks)
				return nil
			}

			if ui.DetectFormat(os.Stdout) == ui.FormatTerminal {
				data := pterm.TableData{{"Disk", "Area", "Directory"}}
				for _, disk := range disks {
					data = append(data, []string{
						strconv.Itoa(disk.Number), disk.Area(), disk.Dirname,
					})
				}
				return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
			}

			for _, disk := range disks {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", disk.Number, disk.Area(), disk.Dirname)
			}
			return nil
		},
	}
}

// newGenConfigCmd builds the genconfig command: emit a commented
// starter configuration.
func newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateConfigContent()
			if err != nil {
				return fmt.Errorf(MsgErrGenConfig, err)
			}

			if !write {
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}

			target := paths.New().ConfigFilePath()
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return fmt.Errorf(MsgErrGenConfig, err)
			}
			if err := os.WriteFile(target, []byte(content), 0644); err != nil {
				return fmt.Errorf(MsgErrGenConfig, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgWroteConfig, target)
			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, MsgFlagWrite)

	return cmd
}
