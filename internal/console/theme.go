package console

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette
var (
	ColorPrimary = lipgloss.Color("#8B5CF6") // Violet
	ColorAccent  = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
)

// DefaultBarMarker draws percentage bars
const DefaultBarMarker = "█"

// ThemeOptions configures rendering
type ThemeOptions struct {
	Color     bool
	BarMarker string
}

// Theme renders calculator output for one writer
type Theme struct {
	renderer *lipgloss.Renderer
	marker   string

	title   lipgloss.Style
	banner  lipgloss.Style
	box     lipgloss.Style
	errMark lipgloss.Style
	okMark  lipgloss.Style
	muted   lipgloss.Style
	bar     lipgloss.Style
	menuKey lipgloss.Style
}

// NewTheme creates a theme bound to w. Color is also dropped automatically
// when w is not a terminal.
func NewTheme(w io.Writer, opts ThemeOptions) *Theme {
	r := lipgloss.NewRenderer(w)
	if !opts.Color {
		r.SetColorProfile(termenv.Ascii)
	}

	marker := opts.BarMarker
	if marker == "" {
		marker = DefaultBarMarker
	}

	return &Theme{
		renderer: r,
		marker:   marker,
		title:    r.NewStyle().Bold(true).Foreground(ColorPrimary),
		banner: r.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Align(lipgloss.Center).
			Padding(0, 2).
			MarginLeft(2),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1).
			MarginLeft(2),
		errMark: r.NewStyle().Bold(true).Foreground(ColorError),
		okMark:  r.NewStyle().Foreground(ColorSuccess),
		muted:   r.NewStyle().Foreground(ColorMuted),
		bar:     r.NewStyle().Foreground(ColorAccent),
		menuKey: r.NewStyle().Bold(true).Foreground(ColorAccent),
	}
}

// Title renders a section heading
func (t *Theme) Title(s string) string {
	return "  " + t.title.Render("── "+s+" ──")
}

// Banner renders centered lines inside a double border
func (t *Theme) Banner(lines ...string) string {
	return t.banner.Render(strings.Join(lines, "\n"))
}

// Box renders lines inside a rounded border
func (t *Theme) Box(lines ...string) string {
	return t.box.Render(strings.Join(lines, "\n"))
}

// Error renders an inline error line
func (t *Theme) Error(msg string) string {
	return "  " + t.errMark.Render("✗") + " " + msg
}

// Added renders the confirmation for an accepted dataset value
func (t *Theme) Added(msg string) string {
	return "    " + t.okMark.Render("→") + " " + msg
}

// Muted renders secondary text
func (t *Theme) Muted(s string) string {
	return t.muted.Render(s)
}

// MenuKey renders a menu selection key such as [1]
func (t *Theme) MenuKey(key string) string {
	return t.menuKey.Render("[" + key + "]")
}

// Bar renders n bar markers; n <= 0 renders nothing
func (t *Theme) Bar(n int) string {
	if n <= 0 {
		return ""
	}
	return t.bar.Render(strings.Repeat(t.marker, n))
}
