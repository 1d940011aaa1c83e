// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette shared by all CLI output, tuned for dark terminal backgrounds.
const (
	// ColorPrimary is purple, for titles and headers.
	ColorPrimary = lipgloss.Color("#7C3AED")
	// ColorMuted is gray, for subtitles and de-emphasized content.
	ColorMuted = lipgloss.Color("#6B7280")
	// ColorSuccess is green, for success states.
	ColorSuccess = lipgloss.Color("#10B981")
	// ColorError is red, for errors.
	ColorError = lipgloss.Color("#EF4444")
	// ColorWarning is amber, for warnings and section labels.
	ColorWarning = lipgloss.Color("#F59E0B")
	// ColorHighlight is blue, for tool names and commands.
	ColorHighlight = lipgloss.Color("#3B82F6")
	// ColorVerbose is light gray, for supplementary details.
	ColorVerbose = lipgloss.Color("#9CA3AF")
)

var (
	// TitleStyle is for primary headers and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for error messages.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// CmdStyle is for tool names and command examples.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	// VerboseStyle is for supplementary information.
	VerboseStyle = lipgloss.NewStyle().
			Foreground(ColorVerbose)

	// Help card styles (card.go).
	cardKindStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	cardNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)

	cardLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWarning).
			MarginTop(1)

	cardValueStyle = lipgloss.NewStyle().
			Foreground(ColorVerbose)

	cardHintStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true).
			MarginTop(1)
)
