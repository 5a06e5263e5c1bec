package prompt

import (
	"context"
	"strings"
)

// InputConfig configures a free text prompt
type InputConfig struct {
	// Flag names the command-line flag that would have answered the prompt
	Flag     string
	Message  string
	Default  string
	Help     string
	Required bool
}

// SelectConfig configures a single choice prompt
type SelectConfig struct {
	Flag         string
	Message      string
	Options      []string
	DefaultIndex int
	Help         string
	PageSize     int
}

// ConfirmConfig configures a yes/no prompt
type ConfirmConfig struct {
	Flag    string
	Message string
	Default bool
	Help    string
}

// Driver collects answers from the user
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
}

// SplitList splits a comma separated answer, dropping empty items
func SplitList(answer string) []string {
	items := []string{}
	for _, item := range strings.Split(answer, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
