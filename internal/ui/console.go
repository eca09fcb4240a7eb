package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/tinytelemetry/clover/internal/model"
)

var (
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	bold   = lipgloss.NewStyle().Bold(true)
)

// Summary renders a styled console summary of one analysis run. The plain
// text and JSON artifacts carry the full report; this is the operator's
// at-a-glance view.
func Summary(r model.Report, source string) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, bold.Render("  Access Log Report ")+dim.Render("· "+source))
	lines = append(lines, dim.Render("  ─────────────────────────────────────"))

	if r.TotalRequests == 0 {
		lines = append(lines, "")
		lines = append(lines, dim.Render("  No data to report."))
		if r.MalformedLines > 0 {
			lines = append(lines, yellow.Render(fmt.Sprintf("  Malformed lines skipped: %d", r.MalformedLines)))
		}
		lines = append(lines, "")
		return strings.Join(lines, "\n")
	}

	period := "N/A"
	if r.TimeRange != nil {
		period = r.TimeRange.Start.Format("2006-01-02 15:04:05") +
			" to " + r.TimeRange.End.Format("2006-01-02 15:04:05")
	}

	lines = append(lines, "")
	lines = append(lines, kv("Period", period))
	lines = append(lines, kv("Requests", fmt.Sprintf("%d", r.TotalRequests)))
	lines = append(lines, kv("Unique IPs", fmt.Sprintf("%d", r.UniqueClients)))
	lines = append(lines, kv("Avg Size", fmt.Sprintf("%d bytes", r.AverageSize)))
	lines = append(lines, kv("Error Rate", errorRateText(r.ErrorRate)))
	lines = append(lines, "")

	lines = append(lines, bold.Render("  Status Codes"))
	lines = append(lines, indent(statusTable(r)))

	lines = append(lines, bold.Render("  Top IP Addresses"))
	lines = append(lines, indent(rankedTable("IP", r.TopClients)))

	lines = append(lines, bold.Render("  Top Endpoints"))
	lines = append(lines, indent(rankedTable("Endpoint", r.TopEndpoints)))

	if r.MalformedLines > 0 {
		lines = append(lines, yellow.Render(fmt.Sprintf("  Malformed lines skipped: %d", r.MalformedLines)))
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func kv(label, value string) string {
	return fmt.Sprintf("  %s %s", dim.Render(fmt.Sprintf("%-12s", label)), cyan.Render(value))
}

func errorRateText(rate float64) string {
	text := fmt.Sprintf("%.1f%%", rate)
	if rate >= 50 {
		return red.Render(text)
	}
	if rate > 0 {
		return yellow.Render(text)
	}
	return green.Render(text)
}

func statusTable(r model.Report) string {
	var b strings.Builder
	table := tablewriter.NewWriter(&b)
	table.SetHeader([]string{"Group", "Label", "Count", "Rate"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)

	for _, g := range model.ReportedGroups {
		gc := r.StatusDist[g]
		table.Append([]string{
			string(g),
			model.GroupLabels[g],
			fmt.Sprintf("%d", gc.Count),
			fmt.Sprintf("%.1f%%", gc.Rate),
		})
	}
	table.Render()
	return b.String()
}

func rankedTable(keyHeader string, items []model.RankedCount) string {
	var b strings.Builder
	table := tablewriter.NewWriter(&b)
	table.SetHeader([]string{"#", keyHeader, "Requests"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)

	for i, item := range items {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			item.Key,
			fmt.Sprintf("%d", item.Count),
		})
	}
	table.Render()
	return b.String()
}

func indent(block string) string {
	trimmed := strings.TrimRight(block, "\n")
	parts := strings.Split(trimmed, "\n")
	for i, p := range parts {
		parts[i] = "  " + p
	}
	return strings.Join(parts, "\n") + "\n"
}
