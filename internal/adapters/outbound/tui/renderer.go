package tui

import (
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/modgen/modgen/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
)

var (
	createTagStyle = lipgloss.NewStyle().Bold(true).Foreground(success)
	planTagStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	pathStyle      = lipgloss.NewStyle().Foreground(fg)
	dimStyle       = lipgloss.NewStyle().Foreground(dim)
	faintStyle     = lipgloss.NewStyle().Foreground(faint)
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(fg)
)

// RenderReport renders one CREATE line per materialized file, in report
// order, followed by a count summary.
func RenderReport(outputRoot string, report domain.GenerationReport) string {
	var b strings.Builder

	for _, entry := range report {
		fmt.Fprintf(&b, "  %s %s %s\n",
			createTagStyle.Render("CREATE"),
			pathStyle.Render(path.Join(outputRoot, entry.RelPath)),
			dimStyle.Render(fmt.Sprintf("(%d bytes)", entry.ByteSize)),
		)
	}

	b.WriteString("\n")
	b.WriteString("  " + dimStyle.Render(fmt.Sprintf("%d file(s) generated", len(report))))
	b.WriteString("\n")

	return b.String()
}

// RenderPlan renders the dry-run variant: PLAN lines, nothing written.
func RenderPlan(outputRoot string, artifacts []domain.GeneratedArtifact) string {
	var b strings.Builder

	for _, a := range artifacts {
		fmt.Fprintf(&b, "  %s %s %s\n",
			planTagStyle.Render("PLAN"),
			pathStyle.Render(path.Join(outputRoot, a.RelPath)),
			dimStyle.Render(fmt.Sprintf("(%d bytes)", len(a.Content))),
		)
	}

	b.WriteString("\n")
	b.WriteString("  " + dimStyle.Render(fmt.Sprintf("%d file(s) planned, nothing written", len(artifacts))))
	b.WriteString("\n")

	return b.String()
}

// RenderHistory renders past generation records, oldest first.
func RenderHistory(records []domain.GenerationRecord) string {
	if len(records) == 0 {
		return "  " + dimStyle.Render("No generations recorded yet.") + "\n"
	}

	var b strings.Builder
	for _, r := range records {
		line := fmt.Sprintf("  %s  %s %s %s",
			dimStyle.Render(r.Timestamp.Format("2006-01-02 15:04:05")),
			titleStyle.Render(r.Resource),
			dimStyle.Render(fmt.Sprintf("[%s]", r.Layout)),
			dimStyle.Render(fmt.Sprintf("%d file(s)", len(r.Files))),
		)
		if r.CommitHash != "" {
			line += "  " + faintStyle.Render(shortHash(r.CommitHash))
		}
		b.WriteString(line + "\n")
	}

	return b.String()
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
