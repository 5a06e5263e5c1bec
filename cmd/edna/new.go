package edna

import (
	"context"
	"os/user"

	"github.com/arthur-debert/edna/pkg/commands/list"
	"github.com/arthur-debert/edna/pkg/commands/newproject"
	"github.com/arthur-debert/edna/pkg/commands/newtemplate"
	"github.com/arthur-debert/edna/pkg/paths"
	"github.com/arthur-debert/edna/pkg/prompt"
	"github.com/arthur-debert/edna/pkg/scripts"
	"github.com/arthur-debert/edna/pkg/style"
	"github.com/arthur-debert/edna/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func (a *app) newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: MsgNewProjectShort,
		Long:  MsgNewProjectLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			flags := cmd.Flags()

			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			meta := cfg.Metadata()

			name, err := a.stringFlag(ctx, cmd, "name", prompt.InputConfig{
				Message:  MsgPromptProjectName,
				Required: true,
			})
			if err != nil {
				return err
			}

			output, err := a.stringFlag(ctx, cmd, "output", prompt.InputConfig{
				Message: MsgPromptProjectOutput,
				Default: "./",
			})
			if err != nil {
				return err
			}
			projectPath := newproject.ProjectPath(paths.ExpandHome(output), name)

			selector, err := a.selectTemplate(ctx, cmd, meta)
			if err != nil {
				return err
			}

			description, _ := flags.GetString("desc")
			projectVersion, _ := flags.GetString("version")
			author, _ := flags.GetString("author")
			log.Info().
				Str("name", name).
				Str("path", projectPath).
				Str("template", selector.String()).
				Str("description", description).
				Str("version", projectVersion).
				Str("author", author).
				Msg("Creating project")

			printer := style.NewPrinter(cmd.OutOrStdout())
			result, err := newproject.NewProject(ctx, newproject.NewProjectOptions{
				Metadata:    meta,
				Selector:    selector,
				Destination: projectPath,
				Runner: &spinnerRunner{
					runner:  a.opts.NewRunner(cfg.Scripts.Shell),
					printer: printer,
				},
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			switch result.Outcome {
			case types.OutcomeScriptsSucceeded:
				printer.Status(style.KindSuccess, MsgScriptsSucceeded)
			case types.OutcomeScriptsFailed:
				printer.Status(style.KindFailure, MsgScriptsFailed)
			case types.OutcomeNoScripts:
				printer.Status(style.KindNotice, MsgNoScripts)
			}
			printer.Status(style.KindLaunch, MsgAllTheBest)
			return nil
		},
	}

	cmd.Flags().StringP("name", "n", "", MsgFlagProjectName)
	cmd.Flags().StringP("desc", "d", "", MsgFlagProjectDesc)
	cmd.Flags().String("version", "", MsgFlagProjectVersion)
	cmd.Flags().StringP("author", "a", "", MsgFlagProjectAuthor)
	cmd.Flags().StringP("output", "o", "", MsgFlagProjectOutput)
	cmd.Flags().StringP("template", "t", "", MsgFlagTemplate)
	cmd.Flags().BoolP("empty", "e", false, MsgFlagEmpty)
	_ = cmd.RegisterFlagCompletionFunc("template", a.templateNamesCompletion)

	return cmd
}

// selectTemplate builds the selector from --empty and --template, asking the
// user to pick from the listing when neither is given
func (a *app) selectTemplate(ctx context.Context, cmd *cobra.Command, meta types.TemplatesMetadata) (types.Selector, error) {
	if empty, _ := cmd.Flags().GetBool("empty"); empty {
		return types.NoTemplate(), nil
	}
	if cmd.Flags().Changed("template") {
		template, _ := cmd.Flags().GetString("template")
		return types.NameOrPath(template), nil
	}

	listing, err := list.ListTemplates(list.ListTemplatesOptions{Metadata: meta})
	if err != nil {
		return types.Selector{}, err
	}
	index, err := a.opts.Prompt.Select(ctx, prompt.SelectConfig{
		Flag:    "template",
		Message: MsgPromptTemplate,
		Options: listing.Names(),
	})
	if err != nil {
		return types.Selector{}, err
	}
	return types.Index(index), nil
}

func (a *app) newTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: MsgNewTemplateShort,
		Long:  MsgNewTemplateLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			meta := cfg.Metadata()

			name, err := a.stringFlag(ctx, cmd, "name", prompt.InputConfig{
				Message:  MsgPromptTemplateName,
				Required: true,
			})
			if err != nil {
				return err
			}
			author, err := a.stringFlag(ctx, cmd, "author", prompt.InputConfig{
				Message: MsgPromptTemplateAuthor,
				Default: defaultAuthor(),
			})
			if err != nil {
				return err
			}
			templateVersion, err := a.stringFlag(ctx, cmd, "version", prompt.InputConfig{
				Message: MsgPromptTemplateVersion,
				Default: types.DefaultTemplateVersion,
			})
			if err != nil {
				return err
			}
			description, err := a.stringFlag(ctx, cmd, "desc", prompt.InputConfig{
				Message: MsgPromptTemplateDesc,
			})
			if err != nil {
				return err
			}
			excludeConfig, err := a.boolFlag(ctx, cmd, "exclude-config", prompt.ConfirmConfig{
				Message: MsgPromptExcludeConfig,
				Default: true,
			})
			if err != nil {
				return err
			}
			excludePaths, err := a.listFlag(ctx, cmd, "exclude-paths", MsgPromptExcludePaths)
			if err != nil {
				return err
			}
			templateScripts, err := a.listFlag(ctx, cmd, "script", MsgPromptScripts)
			if err != nil {
				return err
			}
			output, err := a.stringFlag(ctx, cmd, "output", prompt.InputConfig{
				Message: MsgPromptTemplateOutput,
				Default: name,
			})
			if err != nil {
				return err
			}
			outputPath, err := newtemplate.OutputPath(meta, output, name)
			if err != nil {
				return err
			}
			source, err := a.stringFlag(ctx, cmd, "src", prompt.InputConfig{
				Message: MsgPromptTemplateSource,
			})
			if err != nil {
				return err
			}
			sourcePath, err := paths.Absolute(source)
			if err != nil {
				return err
			}

			log.Info().
				Str("name", name).
				Str("output", outputPath).
				Str("source", sourcePath).
				Msg("Creating template")

			_, err = newtemplate.NewTemplate(newtemplate.NewTemplateOptions{
				Metadata: meta,
				Output:   outputPath,
				Source:   sourcePath,
				Config: types.TemplateConfig{
					Target:        types.TargetProject,
					Name:          name,
					Author:        author,
					Version:       templateVersion,
					Description:   description,
					ExcludePaths:  excludePaths,
					Scripts:       templateScripts,
					ExcludeConfig: excludeConfig,
				},
			})
			if err != nil {
				return err
			}

			style.NewPrinter(cmd.OutOrStdout()).Status(style.KindLaunch, MsgTemplateCreated)
			return nil
		},
	}

	cmd.Flags().StringP("src", "s", "", MsgFlagSource)
	cmd.Flags().StringP("output", "o", "", MsgFlagTemplateOutput)
	cmd.Flags().StringP("name", "n", "", MsgFlagTemplateName)
	cmd.Flags().StringP("desc", "d", "", MsgFlagTemplateDesc)
	cmd.Flags().String("version", "", MsgFlagTemplateVer)
	cmd.Flags().StringP("author", "a", "", MsgFlagTemplateAuthor)
	cmd.Flags().BoolP("exclude-config", "e", false, MsgFlagExcludeConfig)
	cmd.Flags().StringArrayP("exclude-paths", "p", nil, MsgFlagExcludePaths)
	cmd.Flags().StringArrayP("script", "i", nil, MsgFlagScript)

	return cmd
}

// stringFlag returns the flag value when given, otherwise asks for it
func (a *app) stringFlag(ctx context.Context, cmd *cobra.Command, flag string, cfg prompt.InputConfig) (string, error) {
	if cmd.Flags().Changed(flag) {
		return cmd.Flags().GetString(flag)
	}
	cfg.Flag = flag
	return a.opts.Prompt.Input(ctx, cfg)
}

func (a *app) boolFlag(ctx context.Context, cmd *cobra.Command, flag string, cfg prompt.ConfirmConfig) (bool, error) {
	if cmd.Flags().Changed(flag) {
		return cmd.Flags().GetBool(flag)
	}
	cfg.Flag = flag
	return a.opts.Prompt.Confirm(ctx, cfg)
}

// listFlag returns the repeated flag values when given, otherwise asks for a
// comma separated list
func (a *app) listFlag(ctx context.Context, cmd *cobra.Command, flag, message string) ([]string, error) {
	if cmd.Flags().Changed(flag) {
		return cmd.Flags().GetStringArray(flag)
	}
	answer, err := a.opts.Prompt.Input(ctx, prompt.InputConfig{Flag: flag, Message: message})
	if err != nil {
		return nil, err
	}
	return prompt.SplitList(answer), nil
}

// defaultAuthor returns the real name of the current user, or the login name
func defaultAuthor() string {
	u, err := user.Current()
	if err != nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

// spinnerRunner shows a spinner while the scripts run
type spinnerRunner struct {
	runner  scripts.Runner
	printer *style.Printer
}

func (r *spinnerRunner) Run(ctx context.Context, dir string, scriptList []string) (*types.ScriptResult, error) {
	spinner := r.printer.StartSpinner(MsgRunningScripts)
	defer spinner.Stop()
	return r.runner.Run(ctx, dir, scriptList)
}
