package prompt

import (
	"context"
	stderrors "errors"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/arthur-debert/edna/pkg/errors"
	"github.com/mattn/go-isatty"
)

type surveyDriver struct {
	stdio      terminal.Stdio
	isTerminal func() bool
}

// NewSurveyDriver returns the terminal driver bound to the process stdio
func NewSurveyDriver() Driver {
	return &surveyDriver{
		stdio: terminal.Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr},
		isTerminal: func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := d.ready(ctx, cfg.Flag); err != nil {
		return "", err
	}
	var out string
	p := &survey.Input{
		Message: cfg.Message,
		Default: cfg.Default,
		Help:    cfg.Help,
	}
	opts := []survey.AskOpt{survey.WithStdio(d.stdio.In, d.stdio.Out, d.stdio.Err)}
	if cfg.Required {
		opts = append(opts, survey.WithValidator(survey.Required))
	}
	if err := survey.AskOne(p, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if err := d.ready(ctx, cfg.Flag); err != nil {
		return 0, err
	}
	if len(cfg.Options) == 0 {
		return 0, errors.Newf(errors.ErrPrompt, "nothing to choose from for %q", cfg.Message)
	}
	var out int
	p := &survey.Select{
		Message: cfg.Message,
		Options: cfg.Options,
		Help:    cfg.Help,
	}
	if cfg.PageSize > 0 {
		p.PageSize = cfg.PageSize
	}
	if cfg.DefaultIndex >= 0 && cfg.DefaultIndex < len(cfg.Options) {
		p.Default = cfg.Options[cfg.DefaultIndex]
	}
	// an int target receives the selected index
	if err := survey.AskOne(p, &out, survey.WithStdio(d.stdio.In, d.stdio.Out, d.stdio.Err)); err != nil {
		return 0, translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := d.ready(ctx, cfg.Flag); err != nil {
		return false, err
	}
	var out bool
	p := &survey.Confirm{
		Message: cfg.Message,
		Default: cfg.Default,
		Help:    cfg.Help,
	}
	if err := survey.AskOne(p, &out, survey.WithStdio(d.stdio.In, d.stdio.Out, d.stdio.Err)); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) ready(ctx context.Context, flag string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d.isTerminal != nil && !d.isTerminal() {
		return errors.Newf(errors.ErrNotInteractive,
			"stdin is not a terminal, pass --%s instead", flag).
			WithDetail("flag", flag)
	}
	return nil
}

func translateSurveyErr(err error) error {
	if stderrors.Is(err, terminal.InterruptErr) {
		return errors.Wrap(err, errors.ErrPrompt, "prompt aborted")
	}
	return errors.Wrap(err, errors.ErrPrompt, "prompt failed")
}
