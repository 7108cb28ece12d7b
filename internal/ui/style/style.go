// Package style provides shared brand colors and icons for CLI output.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Brand Colors.
var (
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
)

// Renderer returns a lipgloss renderer bound to out and its color profile.
func Renderer(out *termenv.Output) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(out)
	r.SetOutput(out)
	r.SetColorProfile(out.Profile)
	return r
}

// Paint renders s in color c.
func Paint(r *lipgloss.Renderer, s string, c lipgloss.Color) string {
	return r.NewStyle().Foreground(c).Render(s)
}
