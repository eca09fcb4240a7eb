package model

import "time"

// AccessRecord represents a single parsed access-log request line.
// It is the canonical type shared by the parser, aggregator, and renderers.
// A record exists only for lines that matched the fixed log shape and is
// never mutated after creation.
type AccessRecord struct {
	Client       string // source address token, kept opaque
	TimestampRaw string // bracketed timestamp token as it appeared
	Method       string
	Path         string
	Protocol     string // e.g. "HTTP/1.1"
	Status       int
	Size         int64
}

// StatusGroup buckets HTTP status codes by leading digit.
type StatusGroup string

const (
	Status2xx   StatusGroup = "2xx"
	Status3xx   StatusGroup = "3xx"
	Status4xx   StatusGroup = "4xx"
	Status5xx   StatusGroup = "5xx"
	StatusOther StatusGroup = "other"
)

// ReportedGroups are the groups shown in the status distribution, in
// display order. StatusOther contributes to totals but is never displayed.
var ReportedGroups = []StatusGroup{Status2xx, Status3xx, Status4xx, Status5xx}

// GroupLabels maps each reported group to its human-readable label.
var GroupLabels = map[StatusGroup]string{
	Status2xx: "Success",
	Status3xx: "Redirect",
	Status4xx: "Client Error",
	Status5xx: "Server Error",
}

// TimeRange is the span between the earliest and latest parsed timestamps.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// GroupCount holds the count and percentage for one status group.
type GroupCount struct {
	Count int64
	Rate  float64 // percent of total requests, 1 decimal
}

// RankedCount is a key and its occurrence count, used for top-N lists.
type RankedCount struct {
	Key   string
	Count int64
}

// Report is the aggregator's sole output, computed fresh on each run.
type Report struct {
	TimeRange       *TimeRange // nil when no timestamp parsed
	TotalRequests   int64
	UniqueClients   int
	UniqueEndpoints int
	AverageSize     int64 // mean response size, rounded to nearest integer
	TotalBytes      int64
	StatusDist      map[StatusGroup]GroupCount
	ErrorRate       float64 // percent of 4xx+5xx requests, 1 decimal
	TopClients      []RankedCount
	TopEndpoints    []RankedCount
	MethodCounts    []RankedCount
	MalformedLines  int
}
