package nvy

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/arthur-debert/nvy/internal/version"
	"github.com/arthur-debert/nvy/pkg/cobrax/topics"
	"github.com/arthur-debert/nvy/pkg/commands"
	"github.com/arthur-debert/nvy/pkg/config"
	"github.com/arthur-debert/nvy/pkg/logging"
	"github.com/arthur-debert/nvy/pkg/types"
	"github.com/arthur-debert/nvy/pkg/ui"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// cli carries what every command needs once flags are parsed.
type cli struct {
	verbosity int
	dir       string

	settings *config.Settings
	console  *ui.Console
}

// prepare resolves the project directory and loads the user settings.
func (c *cli) prepare(cmd *cobra.Command) error {
	if c.dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf(MsgErrWorkingDir, err)
		}
		c.dir = wd
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf(MsgErrSettings, err)
	}
	c.settings = settings

	mode, err := ui.ParseColorMode(settings.Output.Color)
	if err != nil {
		return err
	}
	c.console = ui.NewConsole(cmd.OutOrStdout(), mode)
	return nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	app := &cli{}

	rootCmd := &cobra.Command{
		Use:     "nvy",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(app.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&app.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&app.dir, "dir", "C", "", MsgFlagDir)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newUseCmd(app))
	rootCmd.AddCommand(newInitCmd(app))
	rootCmd.AddCommand(newProfilesCmd(app))
	rootCmd.AddCommand(newTargetCmd(app))
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newSettingsCmd(app))
	rootCmd.AddCommand(newSnippetCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	installTopics(rootCmd)

	return rootCmd
}

// installTopics serves the embedded guides through `nvy help <topic>`.
func installTopics(rootCmd *cobra.Command) {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return
	}

	var renderer topics.Renderer = &topics.PlainRenderer{}
	if stdoutIsTerminal() && os.Getenv("NO_COLOR") == "" {
		renderer = topics.NewGlamourRenderer()
	}

	tm, err := topics.New(sub, topics.Options{
		Extensions: []string{".md", ".txt"},
		Renderer:   renderer,
	})
	if err != nil {
		log.Debug().Err(err).Msg("Help topics unavailable")
		return
	}
	tm.Install(rootCmd)
}

// profileNamesCompletion provides shell completion for profile names
func profileNamesCompletion(app *cli) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		dir := app.dir
		if dir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			dir = wd
		}

		result, err := commands.ListProfiles(commands.ListProfilesOptions{Dir: dir})
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		// Filter out already specified profiles
		var available []string
		for _, p := range result.Profiles {
			found := false
			for _, arg := range args {
				if arg == p.Name {
					found = true
					break
				}
			}
			if !found {
				available = append(available, p.Name)
			}
		}

		return available, cobra.ShellCompDirectiveNoFileComp
	}
}

func newUseCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:               "use [profiles...]",
		Short:             MsgUseShort,
		Long:              MsgUseLong,
		Example:           MsgUseExample,
		GroupID:           "core",
		ValidArgsFunction: profileNamesCompletion(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.prepare(cmd); err != nil {
				return err
			}

			log.Info().Str("dir", app.dir).Strs("profiles", args).Msg("Switching profiles")

			result, err := commands.RunUse(commands.UseOptions{
				Dir:      app.dir,
				Profiles: args,
				Sentinel: app.settings.Shell.Sentinel,
			})
			if err != nil {
				return err
			}

			if result.Target.IsShell() {
				_, err := io.WriteString(cmd.OutOrStdout(), result.Output)
				return err
			}

			app.console.Success(MsgUseFileWritten,
				result.Exported, strings.Join(result.Profiles, ", "), result.Target.Destination)
			return nil
		},
	}
}

func newInitCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.prepare(cmd); err != nil {
				return err
			}

			result, err := commands.RunInit(commands.InitOptions{
				Dir:      app.dir,
				Settings: app.settings,
				Confirm: func() (bool, error) {
					return confirm(cmd.InOrStdin(), cmd.OutOrStdout(), MsgInitPrompt)
				},
			})
			if err != nil {
				return err
			}

			if result.Cancelled {
				app.console.Warning(MsgInitCancelled)
				return nil
			}
			app.console.Success(MsgInitDone)
			return nil
		},
	}
}

// confirm asks a [Y/n] question. An empty answer means yes.
func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprint(out, prompt)

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "n", "no":
		return false, nil
	}
	return true, nil
}

func newProfilesCmd(app *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "profiles",
		Short:   MsgProfilesShort,
		Long:    MsgProfilesLong,
		Example: MsgProfilesExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.prepare(cmd); err != nil {
				return err
			}

			result, err := commands.ListProfiles(commands.ListProfilesOptions{Dir: app.dir})
			if err != nil {
				return err
			}

			if len(result.Profiles) == 0 {
				app.console.Println(MsgNoProfiles)
				return nil
			}
			printProfiles(app.console, result.Profiles)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <name> <file>",
		Short: MsgProfilesSetShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.prepare(cmd); err != nil {
				return err
			}

			if err := commands.SetProfile(commands.SetProfileOptions{
				Dir:  app.dir,
				Name: args[0],
				File: args[1],
			}); err != nil {
				return err
			}
			app.console.Success(MsgProfileSet, args[0], args[1])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:               "remove <name>",
		Aliases:           []string{"rm"},
		Short:             MsgProfilesRemoveShort,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: profileNamesCompletion(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.prepare(cmd); err != nil {
				return err
			}

			removed, err := commands.RemoveProfile(commands.RemoveProfileOptions{
				Dir:  app.dir,
				Name: args[0],
			})
			if err != nil {
				return err
			}
			if !removed {
				app.console.Warning(MsgProfileNotPresent, args[0])
				return nil
			}
			app.console.Success(MsgProfileRemoved, args[0])
			return nil
		},
	})

	return cmd
}

func printProfiles(console *ui.Console, profiles []types.ProfileInfo) {
	names := make([]string, 0, len(profiles))
	paths := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		names = append(names, p.Name)
		paths = append(paths, p.Paths)
	}
	console.Println(MsgProfilesHeader)
	console.ProfileList(names, paths)
}

func newTargetCmd(app *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "target",
		Short:   MsgTargetShort,
		Long:    MsgTargetLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.prepare(cmd); err != nil {
				return err
			}

			target, err := commands.GetTarget(commands.TargetOptions{Dir: app.dir})
			if err != nil {
				return err
			}
			app.console.Field(MsgFieldTarget, target)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <target>",
		Short: MsgTargetSetShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.prepare(cmd); err != nil {
				return err
			}

			if err := commands.SetTarget(commands.TargetOptions{
				Dir:   app.dir,
				Value: args[0],
			}); err != nil {
				return err
			}
			app.console.Success(MsgTargetSet, args[0])
			return nil
		},
	})

	return cmd
}

func newConfigCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.prepare(cmd); err != nil {
				return err
			}

			summary, err := commands.ShowConfig(commands.ShowConfigOptions{
				Dir:      app.dir,
				Sentinel: app.settings.Shell.Sentinel,
			})
			if err != nil {
				return err
			}

			current := MsgNoneActive
			if len(summary.CurrentProfiles) > 0 {
				current = strings.Join(summary.CurrentProfiles, ", ")
			}
			app.console.Field(MsgFieldTarget, summary.Target)
			app.console.Field(MsgFieldCurrent, current)
			if len(summary.Profiles) == 0 {
				app.console.Println(MsgNoProfiles)
				return nil
			}
			printProfiles(app.console, summary.Profiles)
			return nil
		},
	}
}

func newSettingsCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "settings",
		Short:   MsgSettingsShort,
		Long:    MsgSettingsLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.prepare(cmd); err != nil {
				return err
			}

			data, err := toml.Marshal(app.settings)
			if err != nil {
				return fmt.Errorf(MsgErrEncodeToml, err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newSnippetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "snippet",
		Short:   MsgSnippetShort,
		Long:    MsgSnippetLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), shellSnippet)
			return err
		},
	}
}

const shellSnippet = `nvy_use() {
    eval "$(NVY_TARGET=sh command nvy use "$@")"
}
`

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find the help command and execute it with "topics" argument
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.Name() == "help" {
				if helpCmd.RunE != nil {
					return helpCmd.RunE(helpCmd, []string{"topics"})
				} else if helpCmd.Run != nil {
					helpCmd.Run(helpCmd, []string{"topics"})
					return nil
				}
			}
			return fmt.Errorf(MsgErrHelpMissing)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
