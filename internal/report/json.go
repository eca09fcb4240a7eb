package report

import (
	"encoding/json"

	"github.com/tinytelemetry/clover/internal/model"
)

// Document is the machine-readable form of a report. The field names are
// part of the external contract and must not change.
type Document struct {
	TotalRequests       int64                 `json:"total_requests"`
	UniqueIP            int                   `json:"unique_ip"`
	AverageResponseSize int64                 `json:"average_response_size"`
	ErrorRate           float64               `json:"error_rate"`
	TopIPs              []IPEntry             `json:"top_ips"`
	StatusDistribution  map[string]GroupEntry `json:"status_distribution"`
	TopEndpoints        []EndpointEntry       `json:"top_endpoints"`
}

// IPEntry is one ranked client in the JSON document.
type IPEntry struct {
	IP       string `json:"ip"`
	Requests int64  `json:"requests"`
}

// GroupEntry is one status group in the JSON document.
type GroupEntry struct {
	Count int64   `json:"count"`
	Rate  float64 `json:"rate"`
}

// EndpointEntry is one ranked endpoint in the JSON document.
type EndpointEntry struct {
	Endpoint string `json:"endpoint"`
	Count    int64  `json:"count"`
}

// NewDocument converts a report into its external JSON form.
func NewDocument(r model.Report) Document {
	doc := Document{
		TotalRequests:       r.TotalRequests,
		UniqueIP:            r.UniqueClients,
		AverageResponseSize: r.AverageSize,
		ErrorRate:           r.ErrorRate,
		TopIPs:              make([]IPEntry, 0, len(r.TopClients)),
		StatusDistribution:  make(map[string]GroupEntry, len(model.ReportedGroups)),
		TopEndpoints:        make([]EndpointEntry, 0, len(r.TopEndpoints)),
	}

	for _, c := range r.TopClients {
		doc.TopIPs = append(doc.TopIPs, IPEntry{IP: c.Key, Requests: c.Count})
	}
	for _, g := range model.ReportedGroups {
		gc := r.StatusDist[g]
		doc.StatusDistribution[string(g)] = GroupEntry{Count: gc.Count, Rate: gc.Rate}
	}
	for _, e := range r.TopEndpoints {
		doc.TopEndpoints = append(doc.TopEndpoints, EndpointEntry{Endpoint: e.Key, Count: e.Count})
	}
	return doc
}

// JSON renders a report as an indented JSON document.
func JSON(r model.Report) ([]byte, error) {
	return json.MarshalIndent(NewDocument(r), "", "  ")
}
