package style

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arthur-debert/edna/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorEnabled_NonTerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, ColorEnabled(&buf))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorEnabled(&buf))
}

func TestPrinter_PlainStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		msg  string
		want string
	}{
		{KindSuccess, "Scripts completed successfully!", "✔ Scripts completed successfully!\n"},
		{KindFailure, "Scripts completed with errors.", "x Scripts completed with errors.\n"},
		{KindNotice, "No scripts to run.", "✔ No scripts to run.\n"},
		{KindLaunch, "All the best!", "✔ All the best!\n"},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			var buf bytes.Buffer
			NewPrinter(&buf).Status(tt.kind, tt.msg)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrinter_RenderPlain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	assert.Equal(t, "/path", p.Render(PathStyle, "/path"))
}

func TestSpinner_Plain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	s := p.StartSpinner("Running scripts...")
	s.Stop()
	s.Stop()

	assert.Equal(t, "Running scripts...\n", buf.String())
}

func TestRenderTemplates(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	out, err := p.RenderTemplates(&types.ListTemplatesResult{
		Templates: []types.TemplateListing{
			{Index: 0, RegisteredTemplate: types.RegisteredTemplate{Name: types.NoTemplateLabel}},
			{Index: 1, RegisteredTemplate: types.RegisteredTemplate{Name: "web", Path: "/templates/web"}},
		},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Name")
	assert.Contains(t, lines[1], types.NoTemplateLabel)
	assert.Contains(t, lines[2], "web")
	assert.Contains(t, lines[2], "/templates/web")
}
