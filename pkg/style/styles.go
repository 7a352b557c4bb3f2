package style

import (
	"github.com/arthur-debert/iconrules/pkg/rules"
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)
)

// Rule kind styles
var (
	FileStyle = lipgloss.NewStyle().
			Foreground(FileColor).
			Bold(true)

	FolderStyle = lipgloss.NewStyle().
			Foreground(FolderColor).
			Bold(true)

	OverrideStyle = lipgloss.NewStyle().
			Foreground(OverrideColor).
			Bold(true)
)

// ForKind returns the style used to show rules of kind k.
func ForKind(k rules.Kind) lipgloss.Style {
	switch k {
	case rules.KindFile:
		return FileStyle
	case rules.KindFolder:
		return FolderStyle
	case rules.KindIconOverride:
		return OverrideStyle
	default:
		return MutedStyle
	}
}
