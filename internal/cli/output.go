package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/dpshade/draftsmith/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7dcfff"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8d99ae"))
	goodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68"))
	badStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f7768e"))
)

func styled(style lipgloss.Style, s string) string {
	if flagNoColor {
		return s
	}
	return style.Render(s)
}

// printJSON marshals any result value for machine consumers.
func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// renderPreview runs markdown through glamour unless plain output was asked
// for; on any rendering failure the raw markdown is printed instead.
func renderPreview(markdown string) string {
	if flagPlain || flagNoColor {
		return markdown
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return markdown
	}
	pretty, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return pretty
}

func bandStyle(band models.Band) lipgloss.Style {
	switch band {
	case models.BandExcellent, models.BandGood:
		return goodStyle
	case models.BandNeedsWork:
		return warnStyle
	default:
		return badStyle
	}
}

// formatScoreCard renders the score report as a terminal card: percentage,
// band, then failing items ordered highest weight first.
func formatScoreCard(report *models.ScoreReport) string {
	var b strings.Builder
	b.WriteString(styled(headerStyle, "Completeness") + "\n")
	b.WriteString(fmt.Sprintf("  %.1f%% (%d/%d) %s\n",
		report.Percentage, report.AchievedWeight, report.TotalWeight,
		styled(bandStyle(report.Band), string(report.Band))))

	if len(report.FailedItems) == 0 {
		b.WriteString(styled(dimStyle, "  every checklist item passed") + "\n")
		return b.String()
	}

	b.WriteString(styled(headerStyle, "Gaps (highest impact first)") + "\n")
	for _, item := range report.FailedItems {
		b.WriteString(fmt.Sprintf("  -%d  %s  %s\n",
			item.Weight, item.ItemID, styled(dimStyle, item.Reason)))
	}
	return b.String()
}

// formatCandidates renders a ranked candidate list.
func formatCandidates(candidates []models.Candidate) string {
	var b strings.Builder
	for i, c := range candidates {
		b.WriteString(fmt.Sprintf("  %d. %-28s %-20s %.3f\n",
			i+1, c.TemplateID, c.Category, c.MatchScore))
	}
	return b.String()
}

// formatTemplateList renders catalog descriptors as a fixed-width table.
func formatTemplateList(descriptors []*models.TemplateDescriptor) string {
	var b strings.Builder
	b.WriteString(styled(headerStyle, fmt.Sprintf("  %-28s %-20s %s", "ID", "CATEGORY", "NAME")) + "\n")
	for _, d := range descriptors {
		b.WriteString(fmt.Sprintf("  %-28s %-20s %s\n", d.ID, d.Category, d.Name))
	}
	return b.String()
}

// formatTemplateDetail renders one descriptor with its sections and keywords.
func formatTemplateDetail(d *models.TemplateDescriptor) string {
	var b strings.Builder
	b.WriteString(styled(headerStyle, d.Name) + "\n")
	if d.Description != "" {
		b.WriteString("  " + d.Description + "\n")
	}
	b.WriteString(fmt.Sprintf("  id: %s  category: %s  priority: %d\n", d.ID, d.Category, d.Priority))
	b.WriteString("  keywords: " + strings.Join(d.MatchKeywords, ", ") + "\n")
	b.WriteString(styled(headerStyle, "Sections") + "\n")
	for _, s := range d.Sections {
		marker := "optional"
		if s.Required {
			marker = "required"
		}
		b.WriteString(fmt.Sprintf("  %-24s %-9s %s", s.PlaceholderKey, marker, s.Heading))
		if s.Hint != "" {
			b.WriteString("  " + styled(dimStyle, s.Hint))
		}
		b.WriteString("\n")
	}
	return b.String()
}
