package analyzer

import (
	"math"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/tinytelemetry/clover/internal/logparse"
	"github.com/tinytelemetry/clover/internal/model"
	"github.com/tinytelemetry/clover/internal/timestamp"
)

// Aggregate computes the full analysis report in a single pass over the
// complete record set. The malformed count from the parsing phase is
// carried into the report unchanged.
//
// Rounding policy: half away from zero (math.Round), applied to the
// average size (nearest integer) and to all percentages (1 decimal).
func Aggregate(records []model.AccessRecord, malformed int) model.Report {
	report := model.Report{
		TotalRequests:  int64(len(records)),
		MalformedLines: malformed,
		StatusDist:     emptyDistribution(),
	}
	if len(records) == 0 {
		return report
	}

	tsParser := timestamp.NewParser()
	clients := newFreqTable()
	endpoints := newFreqTable()
	methods := newFreqTable()
	groupCounts := make(map[model.StatusGroup]int64)
	sizes := make([]float64, 0, len(records))

	var errorCount int64
	var haveRange bool
	var earliest, latest time.Time

	for _, rec := range records {
		clients.add(rec.Client)
		endpoints.add(rec.Path)
		methods.add(rec.Method)
		sizes = append(sizes, float64(rec.Size))
		report.TotalBytes += rec.Size

		group := logparse.ClassifyStatus(rec.Status)
		groupCounts[group]++
		if logparse.IsErrorGroup(group) {
			errorCount++
		}

		if ts, ok := tsParser.Parse(rec.TimestampRaw); ok {
			if !haveRange {
				earliest, latest = ts, ts
				haveRange = true
				continue
			}
			if ts.Before(earliest) {
				earliest = ts
			}
			if ts.After(latest) {
				latest = ts
			}
		}
	}

	if mean, err := stats.Mean(sizes); err == nil {
		report.AverageSize = int64(math.Round(mean))
	}

	total := float64(report.TotalRequests)
	for _, g := range model.ReportedGroups {
		count := groupCounts[g]
		report.StatusDist[g] = model.GroupCount{
			Count: count,
			Rate:  roundRate(float64(count) / total * 100),
		}
	}
	report.ErrorRate = roundRate(float64(errorCount) / total * 100)

	report.UniqueClients = clients.len()
	report.UniqueEndpoints = endpoints.len()
	report.TopClients = clients.ranked(model.DefaultTopClients)
	report.TopEndpoints = endpoints.ranked(model.DefaultTopEndpoints)
	report.MethodCounts = methods.ranked(len(methods.counts))

	if haveRange {
		report.TimeRange = &model.TimeRange{Start: earliest, End: latest}
	}
	return report
}

func emptyDistribution() map[model.StatusGroup]model.GroupCount {
	dist := make(map[model.StatusGroup]model.GroupCount, len(model.ReportedGroups))
	for _, g := range model.ReportedGroups {
		dist[g] = model.GroupCount{}
	}
	return dist
}

// roundRate rounds a percentage to one decimal place, half away from zero.
func roundRate(v float64) float64 {
	return math.Round(v*10) / 10
}

// freqTable counts key occurrences and remembers first-seen order so that
// ranking ties break deterministically by input order.
type freqTable struct {
	counts map[string]int64
	order  map[string]int
}

func newFreqTable() *freqTable {
	return &freqTable{
		counts: make(map[string]int64),
		order:  make(map[string]int),
	}
}

func (t *freqTable) add(key string) {
	if _, seen := t.counts[key]; !seen {
		t.order[key] = len(t.order)
	}
	t.counts[key]++
}

func (t *freqTable) len() int {
	return len(t.counts)
}

// ranked returns up to n keys by descending count, ties broken by
// first-seen order.
func (t *freqTable) ranked(n int) []model.RankedCount {
	items := make([]model.RankedCount, 0, len(t.counts))
	for key, count := range t.counts {
		items = append(items, model.RankedCount{Key: key, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return t.order[items[i].Key] < t.order[items[j].Key]
	})
	if len(items) > n {
		items = items[:n]
	}
	return items
}
