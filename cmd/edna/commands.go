package edna

import (
	"fmt"

	"github.com/arthur-debert/edna/internal/version"
	"github.com/arthur-debert/edna/pkg/commands/genconfig"
	"github.com/arthur-debert/edna/pkg/commands/initialize"
	"github.com/arthur-debert/edna/pkg/commands/list"
	"github.com/arthur-debert/edna/pkg/config"
	"github.com/arthur-debert/edna/pkg/errors"
	"github.com/arthur-debert/edna/pkg/logging"
	"github.com/arthur-debert/edna/pkg/paths"
	"github.com/arthur-debert/edna/pkg/prompt"
	"github.com/arthur-debert/edna/pkg/scripts"
	"github.com/arthur-debert/edna/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// RootOptions holds the collaborators commands use to reach the user and the
// host shell. Zero values select the terminal prompt and the host shell.
type RootOptions struct {
	Prompt    prompt.Driver
	NewRunner func(shell string) scripts.Runner
}

// app is shared by every command of one root command
type app struct {
	opts         RootOptions
	templatesDir string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return NewRootCmdWith(RootOptions{})
}

// NewRootCmdWith creates the root command with the given collaborators
func NewRootCmdWith(opts RootOptions) *cobra.Command {
	initTemplateFormatting()

	if opts.Prompt == nil {
		opts.Prompt = prompt.NewSurveyDriver()
	}
	if opts.NewRunner == nil {
		opts.NewRunner = func(shell string) scripts.Runner {
			return scripts.NewShellRunner(shell)
		}
	}

	a := &app{opts: opts}
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "edna",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgNoCommandSpecified)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.templatesDir, "templates-dir", "", MsgFlagTemplatesDir)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(a.newNewCmd())
	rootCmd.AddCommand(a.newInitCmd())
	rootCmd.AddCommand(a.newListCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// loadConfig resolves the configuration, applying --templates-dir last
func (a *app) loadConfig() (*config.Config, error) {
	p, err := paths.New()
	if err != nil {
		return nil, err
	}
	return config.Load(p, map[string]interface{}{
		"templates.directory": a.templatesDir,
	})
}

func (a *app) newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "new",
		Short:   MsgNewShort,
		GroupID: "core",
	}
	cmd.AddCommand(a.newProjectCmd())
	cmd.AddCommand(a.newTemplateCmd())
	return cmd
}

func (a *app) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			log.Info().Str("directory", cfg.Templates.Directory).Msg("Initializing templates registry")

			result, err := initialize.Init(initialize.InitOptions{Metadata: cfg.Metadata()})
			if err != nil {
				return err
			}

			printer := style.NewPrinter(cmd.OutOrStdout())
			if result.Created {
				printer.Status(style.KindSuccess, fmt.Sprintf(MsgRegistryCreated, result.RegistryPath))
			} else {
				printer.Status(style.KindNotice, fmt.Sprintf(MsgRegistryExists, result.RegistryPath))
			}
			return nil
		},
	}
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			log.Info().Str("directory", cfg.Templates.Directory).Msg("Listing templates")

			result, err := list.ListTemplates(list.ListTemplatesOptions{Metadata: cfg.Metadata()})
			if err != nil {
				return err
			}

			printer := style.NewPrinter(cmd.OutOrStdout())
			table, err := printer.RenderTemplates(result)
			if err != nil {
				return err
			}
			printer.Println(table)

			errPrinter := style.NewPrinter(cmd.ErrOrStderr())
			for _, skipped := range result.Skipped {
				errPrinter.Status(style.KindFailure, fmt.Sprintf(MsgSkippedTemplate, skipped.Name, skipped.Path))
			}
			return nil
		},
	}
}

// templateNamesCompletion provides shell completion for registered template names
func (a *app) templateNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	result, err := list.ListTemplates(list.ListTemplatesOptions{Metadata: cfg.Metadata()})
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	names := []string{"none"}
	for _, t := range result.Templates[1:] {
		names = append(names, t.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func newGenConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			write, _ := cmd.Flags().GetBool("write")

			p, err := paths.New()
			if err != nil {
				return err
			}

			result, err := genconfig.GenConfig(genconfig.GenConfigOptions{
				ConfigPath: p.ConfigFilePath(),
				Write:      write,
			})
			if err != nil {
				return err
			}

			if !write {
				fmt.Fprint(cmd.OutOrStdout(), result.ConfigContent)
				return nil
			}

			printer := style.NewPrinter(cmd.OutOrStdout())
			for _, path := range result.FilesWritten {
				printer.Status(style.KindSuccess, fmt.Sprintf(MsgConfigWritten, path))
			}
			return nil
		},
	}

	cmd.Flags().BoolP("write", "w", false, MsgFlagWrite)

	return cmd
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
				return cmd.Root().GenBashCompletion(out)
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
