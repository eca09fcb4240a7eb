package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tinytelemetry/clover/internal/model"
)

func testReport() model.Report {
	return model.Report{
		TotalRequests: 2,
		UniqueClients: 1,
		AverageSize:   75,
		StatusDist: map[model.StatusGroup]model.GroupCount{
			model.Status2xx: {Count: 2, Rate: 100.0},
			model.Status3xx: {},
			model.Status4xx: {},
			model.Status5xx: {},
		},
		TopClients:   []model.RankedCount{{Key: "10.0.0.1", Count: 2}},
		TopEndpoints: []model.RankedCount{{Key: "/", Count: 2}},
	}
}

func TestWriteText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.txt")

	if err := NewWriter().WriteText(testReport(), "access.log", path); err != nil {
		t.Fatalf("WriteText: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if !strings.Contains(string(data), "=== Log Analysis Report ===") {
		t.Errorf("artifact missing header:\n%s", data)
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.json")

	if err := NewWriter().WriteJSON(testReport(), path); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	if doc["total_requests"].(float64) != 2 {
		t.Errorf("total_requests = %v, want 2", doc["total_requests"])
	}
}

func TestWriteRankingsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rankings.csv")

	if err := NewWriter().WriteRankingsCSV(testReport(), path); err != nil {
		t.Fatalf("WriteRankingsCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open artifact: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("csv rows = %d, want header + 2", len(rows))
	}
	if rows[0][0] != "kind" {
		t.Errorf("header = %v, want kind,key,requests", rows[0])
	}
	if rows[1][0] != "client" || rows[1][1] != "10.0.0.1" || rows[1][2] != "2" {
		t.Errorf("client row = %v", rows[1])
	}
	if rows[2][0] != "endpoint" || rows[2][1] != "/" {
		t.Errorf("endpoint row = %v", rows[2])
	}
}

func TestWriteText_BadPath(t *testing.T) {
	err := NewWriter().WriteText(testReport(), "access.log", filepath.Join(t.TempDir(), "missing", "out.txt"))
	if err == nil {
		t.Error("WriteText to missing directory should fail")
	}
}
