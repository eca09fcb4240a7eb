package report

import (
	"fmt"
	"strings"

	"github.com/tinytelemetry/clover/internal/model"
)

// periodLayout formats time-range bounds in the text report.
const periodLayout = "2006-01-02 15:04:05"

// Text renders a report as plain text. It is a pure function of the report
// value; callers decide where the string goes (file, stdout, HTTP).
func Text(r model.Report, source string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== Log Analysis Report ===\n")
	fmt.Fprintf(&b, "File: %s\n", source)

	if r.TotalRequests == 0 {
		b.WriteString("\nNo data to report.\n")
		if r.MalformedLines > 0 {
			fmt.Fprintf(&b, "\nMalformed lines skipped: %d\n", r.MalformedLines)
		}
		return b.String()
	}

	if r.TimeRange != nil {
		fmt.Fprintf(&b, "Analysis Period: %s to %s\n",
			r.TimeRange.Start.Format(periodLayout),
			r.TimeRange.End.Format(periodLayout))
	} else {
		fmt.Fprintf(&b, "Analysis Period: N/A\n")
	}

	b.WriteString("\nSUMMARY:\n")
	fmt.Fprintf(&b, "- Total Requests: %d\n", r.TotalRequests)
	fmt.Fprintf(&b, "- Unique IP Addresses: %d\n", r.UniqueClients)
	fmt.Fprintf(&b, "- Average Response Size: %d bytes\n", r.AverageSize)
	fmt.Fprintf(&b, "- Error Rate: %.1f%%\n", r.ErrorRate)

	b.WriteString("\nTOP IP ADDRESSES:\n")
	for i, c := range r.TopClients {
		fmt.Fprintf(&b, "%d. %s (%d requests)\n", i+1, c.Key, c.Count)
	}

	b.WriteString("\nSTATUS CODE DISTRIBUTION:\n")
	for _, g := range model.ReportedGroups {
		gc := r.StatusDist[g]
		fmt.Fprintf(&b, "- %s %s: %d (%.1f%%)\n", g, model.GroupLabels[g], gc.Count, gc.Rate)
	}

	b.WriteString("\nTOP ENDPOINTS:\n")
	for i, e := range r.TopEndpoints {
		fmt.Fprintf(&b, "%d. %s (%d requests)\n", i+1, e.Key, e.Count)
	}

	if len(r.MethodCounts) > 0 {
		b.WriteString("\nHTTP METHODS:\n")
		for _, m := range r.MethodCounts {
			fmt.Fprintf(&b, "- %s: %d\n", m.Key, m.Count)
		}
	}

	if r.MalformedLines > 0 {
		fmt.Fprintf(&b, "\nMalformed lines skipped: %d\n", r.MalformedLines)
	}
	return b.String()
}
