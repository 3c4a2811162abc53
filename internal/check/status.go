package check

import (
	"fmt"
	"strings"
)

// Status is the health verdict of a check run, following the standard
// four-state monitoring convention.
type Status int

const (
	StatusOK Status = iota
	StatusWarning
	StatusCritical
	StatusUnknown
)

// String returns the status word supervisors expect in check output.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "WARNING"
	case StatusCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ExitCode maps the status to the conventional process exit code
// (0=OK, 1=WARNING, 2=CRITICAL, 3=UNKNOWN).
func (s Status) ExitCode() int {
	switch s {
	case StatusOK:
		return 0
	case StatusWarning:
		return 1
	case StatusCritical:
		return 2
	default:
		return 3
	}
}

// Result is the final verdict of a check run: exactly one status and one
// human-readable message per invocation.
type Result struct {
	Status  Status
	Message string
}

func OK(format string, args ...any) Result {
	return Result{Status: StatusOK, Message: fmt.Sprintf(format, args...)}
}

func Warning(format string, args ...any) Result {
	return Result{Status: StatusWarning, Message: fmt.Sprintf(format, args...)}
}

func Critical(format string, args ...any) Result {
	return Result{Status: StatusCritical, Message: fmt.Sprintf(format, args...)}
}

func Unknown(format string, args ...any) Result {
	return Result{Status: StatusUnknown, Message: fmt.Sprintf(format, args...)}
}

// Findings accumulates rule violations across a single pass over the
// response records, so multiple violations are reported together instead of
// failing fast on the first.
type Findings struct {
	criticals []string
	warnings  []string
}

// Critical records a critical finding.
func (f *Findings) Critical(format string, args ...any) {
	f.criticals = append(f.criticals, fmt.Sprintf(format, args...))
}

// Warning records a warning finding.
func (f *Findings) Warning(format string, args ...any) {
	f.warnings = append(f.warnings, fmt.Sprintf(format, args...))
}

// Verdict collapses the accumulated findings into a single Result. Critical
// findings suppress warning findings entirely; each bucket is joined with
// ", ". With no findings the result is OK with okMessage.
func (f *Findings) Verdict(okMessage string) Result {
	switch {
	case len(f.criticals) > 0:
		return Critical("%s", strings.Join(f.criticals, ", "))
	case len(f.warnings) > 0:
		return Warning("%s", strings.Join(f.warnings, ", "))
	default:
		return OK("%s", okMessage)
	}
}
