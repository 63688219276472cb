package style

import (
	"github.com/arthur-debert/pioneer/pkg/items"
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)
)

// Item kind styles
var (
	PackageStyle = lipgloss.NewStyle().
			Foreground(PackageColor).
			Bold(true)

	ShellStyle = lipgloss.NewStyle().
			Foreground(ShellColor).
			Bold(true)

	FileStyle = lipgloss.NewStyle().
			Foreground(FileColor).
			Bold(true)
)

// KindStyle returns the style used for items of kind k.
func KindStyle(k items.Kind) lipgloss.Style {
	switch k {
	case items.KindPackage:
		return PackageStyle
	case items.KindAlias, items.KindEnv, items.KindRc:
		return ShellStyle
	case items.KindCommand, items.KindFile:
		return FileStyle
	default:
		return MutedStyle
	}
}
