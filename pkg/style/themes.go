package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Color definitions using AdaptiveColor for automatic light/dark mode switching
var (
	PrimaryColor = lipgloss.AdaptiveColor{
		Light: "#007ACC", // Blue
		Dark:  "#3D9EFF",
	}

	SecondaryColor = lipgloss.AdaptiveColor{
		Light: "#6C757D", // Gray
		Dark:  "#A0A8B0",
	}

	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545", // Red
		Dark:  "#FF6B7D",
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D",
		Dark:  "#ADB5BD",
	}
)
