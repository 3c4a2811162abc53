package cmd

import (
	"github.com/fatih/color"

	"github.com/r0b0tAnthony/sensu-plugins-http/internal/check"
)

var (
	colorOK       = color.New(color.FgGreen).SprintFunc()
	colorWarning  = color.New(color.FgYellow).SprintFunc()
	colorCritical = color.New(color.FgRed).SprintFunc()
	colorUnknown  = color.New(color.FgCyan).SprintFunc()
)

// formatStatus colors the status word for terminal output. Color is
// disabled automatically when stdout is not a TTY, so supervisors parsing
// check output see the plain word.
func formatStatus(s check.Status) string {
	switch s {
	case check.StatusOK:
		return colorOK(s.String())
	case check.StatusWarning:
		return colorWarning(s.String())
	case check.StatusCritical:
		return colorCritical(s.String())
	default:
		return colorUnknown(s.String())
	}
}
