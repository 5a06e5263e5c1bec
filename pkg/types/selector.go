package types

import "fmt"

// NoTemplateName is the literal that selects "no template"
const NoTemplateName = "none"

// NoTemplateLabel is the display name of the entry prepended to listings
const NoTemplateLabel = "(No template)"

// SelectorKind tells how a Selector picks a template
type SelectorKind int

const (
	// SelectNone creates an empty project
	SelectNone SelectorKind = iota
	// SelectNameOrPath resolves a registered name, falling back to a path
	SelectNameOrPath
	// SelectIndex picks a position in the template listing
	SelectIndex
)

// Selector identifies the template a project is instantiated from
type Selector struct {
	Kind  SelectorKind
	Value string
	Index int
}

// NoTemplate selects no template at all
func NoTemplate() Selector {
	return Selector{Kind: SelectNone}
}

// NameOrPath selects a registered template by name or a directory by path
func NameOrPath(value string) Selector {
	return Selector{Kind: SelectNameOrPath, Value: value}
}

// Index selects an entry of the template listing; 0 is always "no template"
func Index(i int) Selector {
	return Selector{Kind: SelectIndex, Index: i}
}

// IsNone reports whether the selector bypasses copying
func (s Selector) IsNone() bool {
	switch s.Kind {
	case SelectNone:
		return true
	case SelectNameOrPath:
		return s.Value == NoTemplateName
	case SelectIndex:
		return s.Index == 0
	}
	return false
}

func (s Selector) String() string {
	switch s.Kind {
	case SelectNone:
		return NoTemplateName
	case SelectIndex:
		return fmt.Sprintf("#%d", s.Index)
	default:
		return s.Value
	}
}
