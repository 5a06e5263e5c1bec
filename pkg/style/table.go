package style

import (
	"strconv"

	"github.com/arthur-debert/edna/pkg/types"
	"github.com/pterm/pterm"
)

// RenderTemplates renders the template listing as a table of index, name and
// path
func (p *Printer) RenderTemplates(listing *types.ListTemplatesResult) (string, error) {
	data := pterm.TableData{{"#", "Name", "Path"}}
	for _, t := range listing.Templates {
		nameStyle := NameStyle
		if t.Index == 0 {
			nameStyle = MutedStyle
		}
		data = append(data, []string{
			strconv.Itoa(t.Index),
			p.Render(nameStyle, t.Name),
			p.Render(PathStyle, t.Path),
		})
	}

	table := pterm.DefaultTable.WithHasHeader(true).WithData(data)
	if !p.color {
		table = table.WithHeaderStyle(pterm.NewStyle()).WithSeparatorStyle(pterm.NewStyle())
	}
	return table.Srender()
}
