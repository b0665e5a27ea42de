// Package report prints the styled summary and error lines on stderr,
// keeping them out of the generated output on stdout.
package report

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/gubarz/litex/internal/config"
)

// StyleManager encapsulates the summary styles
type StyleManager struct {
	Path  lipgloss.Style
	Count lipgloss.Style
	Err   lipgloss.Style
}

// DefaultStyles returns a StyleManager with default styles
func DefaultStyles() *StyleManager {
	return &StyleManager{
		Path:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Count: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Err:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// LoadFromConfig updates styles based on configuration
func (s *StyleManager) LoadFromConfig() {
	s.Path = lipgloss.NewStyle().Foreground(parseANSIColor(config.GetColorPath()))
	s.Count = lipgloss.NewStyle().Foreground(parseANSIColor(config.GetColorCount()))
	s.Err = lipgloss.NewStyle().Foreground(parseANSIColor(config.GetColorErr()))
}

// parseANSIColor converts ANSI color codes to lipgloss colors
func parseANSIColor(code string) lipgloss.Color {
	ansiToLipgloss := map[string]string{
		"30": "0", "31": "1", "32": "2", "33": "3",
		"34": "4", "35": "5", "36": "6", "37": "7",
		"90": "8", "91": "9", "92": "10", "93": "11",
		"94": "12", "95": "13", "96": "14", "97": "15",
	}
	if mapped, ok := ansiToLipgloss[code]; ok {
		return lipgloss.Color(mapped)
	}
	return lipgloss.Color(code)
}

// Global style manager instance
var styles = DefaultStyles()

// RefreshStyles updates the global styles from config
func RefreshStyles() {
	styles.LoadFromConfig()
}

// Summary prints a one-line extraction summary unless quiet is set
func Summary(input string, size int, dest string) {
	if config.GetQuiet() {
		return
	}
	fmt.Fprintf(os.Stderr, "extracted %s bytes from %s into %s\n",
		styles.Count.Render(strconv.Itoa(size)),
		styles.Path.Render(input),
		styles.Path.Render(dest))
}

// Error prints a styled error line
func Error(err error) {
	fmt.Fprintln(os.Stderr, styles.Err.Render("error: "+err.Error()))
}
