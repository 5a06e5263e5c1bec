package config

import (
	"strings"
)

// GenerateConfigContent returns the defaults with every value commented out,
// ready to be saved as the user's config.toml
func GenerateConfigContent() string {
	return commentOutConfigValues(GetDefaultsContent())
}

// commentOutConfigValues comments out every assignment line, keeping blank
// lines, comments and section headers
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			result = append(result, line)
		case strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}
