package ui

import (
	"github.com/charmbracelet/lipgloss"
	te "github.com/muesli/termenv"
)

var (
	StyleLogo         = NewStyle("#ffc27d", "#f37329", true, false)
	StyleHelp         = NewStyle("#4e4e4e", "", true, false)
	StyleTerm         = NewStyle("#ffffff", "", true, false)
	StyleMean         = NewStyle("#ffffff", "", false, false)
	StylePart         = NewStyle("#66C2CD", "", false, true)
	StylePronounce    = NewStyle("#B9BFCA", "", false, true)
	StyleExample      = NewStyle("#B9BFCA", "", false, false)
	StyleKey          = NewStyle("#ff5faf", "", true, false)
	StyleKeyHelp      = NewStyle("#B9BFCA", "", false, false)
	StyleWordCount    = NewStyle("#D290E4", "", false, false)
	StyleOption       = NewStyle("#D290E4", "", false, false)
	StyleOptionSelect = NewStyle("#ff5faf", "", true, false)
	StyleSuccess      = NewStyle("#98C379", "", true, false)
	Stylefail         = NewStyle("#E06C75", "", true, false)
	StyleMarkFavorite = NewStyle("#E06C75", "", false, false)
	StyleMarkKnown    = NewStyle("#98C379", "", false, false)
	StyleError        = NewStyle("#E06C75", "", false, false)
	StyleTitle        = NewStyle("#ffffff", "", true, false)
	StyleSubtle       = NewStyle("#6c6c6c", "", false, false)
	StyleCursor       = NewStyle("#ff5faf", "", true, false)
)

const (
	InputTextColor = "#ff5faf"
)

var (
	CardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(1, 4).Align(lipgloss.Center)
	CardBackStyle = CardStyle.BorderForeground(lipgloss.Color("205"))
	DocStyle      = lipgloss.NewStyle().Margin(1, 2)
	InputStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(InputTextColor))
)

func NewStyle(fg string, bg string, bold bool, italic bool) func(string) string {
	p := te.ColorProfile()
	s := te.Style{}.Foreground(p.Color(fg))
	if bg != "" {
		s = s.Background(p.Color(bg))
	}
	if bold {
		s = s.Bold()
	}
	if italic {
		s = s.Italic()
	}
	return s.Styled
}

// ColorStyle styles text with a category color.
func ColorStyle(fg string) func(string) string {
	return NewStyle(fg, "", true, false)
}
