package errors

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrorHandler provides interface-specific error handling
type ErrorHandler interface {
	HandleError(err error) error
	FormatError(err error) string
}

var (
	criticalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b6b"))
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#feca57"))
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#48cae4"))
	contextStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8d99ae"))
)

// CLIErrorHandler formats AppErrors for terminal display. Recoverable errors
// render their correction data (missing key, candidate list, suggestions) so
// the user can fix the input and rerun.
type CLIErrorHandler struct {
	Verbose bool
	NoColor bool
}

// NewCLIErrorHandler creates a new CLI error handler
func NewCLIErrorHandler(verbose, noColor bool) *CLIErrorHandler {
	return &CLIErrorHandler{Verbose: verbose, NoColor: noColor}
}

// HandleError returns a display-ready error for CLI output
func (h *CLIErrorHandler) HandleError(err error) error {
	return fmt.Errorf("%s", h.FormatError(err))
}

// FormatError formats an error for CLI display
func (h *CLIErrorHandler) FormatError(err error) string {
	appErr := GetAppError(err)

	var b strings.Builder
	b.WriteString(h.styled(appErr.Severity, fmt.Sprintf("%s: %s", appErr.Code, appErr.Message)))
	if appErr.Details != "" {
		b.WriteString("\n  " + appErr.Details)
	}

	for _, line := range h.contextLines(appErr) {
		b.WriteString("\n  " + h.dim(line))
	}

	if h.Verbose && appErr.Cause != nil {
		b.WriteString("\n  " + h.dim(fmt.Sprintf("caused by: %v", appErr.Cause)))
	}

	return b.String()
}

// contextLines turns recovery context into human-readable hints.
func (h *CLIErrorHandler) contextLines(appErr *AppError) []string {
	if appErr.Context == nil {
		return nil
	}

	var lines []string
	if key, ok := appErr.Context["key"].(string); ok {
		lines = append(lines, fmt.Sprintf("supply a value for --field %s=...", key))
	}
	if suggestions, ok := appErr.Context["suggestions"].([]string); ok && len(suggestions) > 0 {
		lines = append(lines, "did you mean: "+strings.Join(suggestions, ", "))
	}
	if _, ok := appErr.Context["candidates"]; ok {
		lines = append(lines, "pass --category to choose one of the ranked candidates")
	}

	// Remaining context keys in stable order, for --verbose debugging.
	if h.Verbose {
		keys := make([]string, 0, len(appErr.Context))
		for k := range appErr.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("%s: %v", k, appErr.Context[k]))
		}
	}
	return lines
}

func (h *CLIErrorHandler) styled(severity ErrorSeverity, msg string) string {
	if h.NoColor {
		return msg
	}
	switch severity {
	case SeverityCritical:
		return criticalStyle.Render(msg)
	case SeverityError:
		return errorStyle.Render(msg)
	case SeverityWarning:
		return warningStyle.Render(msg)
	case SeverityInfo:
		return infoStyle.Render(msg)
	default:
		return errorStyle.Render(msg)
	}
}

func (h *CLIErrorHandler) dim(msg string) string {
	if h.NoColor {
		return msg
	}
	return contextStyle.Render(msg)
}
