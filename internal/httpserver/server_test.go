package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tinytelemetry/clover/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*Server, *gin.Engine) {
	t.Helper()

	rep := model.Report{
		TotalRequests: 3,
		UniqueClients: 2,
		AverageSize:   100,
		StatusDist: map[model.StatusGroup]model.GroupCount{
			model.Status2xx: {Count: 2, Rate: 66.7},
			model.Status3xx: {},
			model.Status4xx: {Count: 1, Rate: 33.3},
			model.Status5xx: {},
		},
		ErrorRate:    33.3,
		TopClients:   []model.RankedCount{{Key: "10.0.0.1", Count: 2}},
		TopEndpoints: []model.RankedCount{{Key: "/", Count: 3}},
	}

	srv := NewServer("", rep, "access.log")
	srv.startTime = time.Now()
	return srv, srv.routes()
}

func TestHealthEndpoint(t *testing.T) {
	_, r := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("health status = %d, want %d", w.Code, http.StatusOK)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal health: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("health status = %v, want ok", body["status"])
	}
	if body["total_requests"].(float64) != 3 {
		t.Errorf("health total_requests = %v, want 3", body["total_requests"])
	}
}

func TestReportEndpoint(t *testing.T) {
	_, r := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/report", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("report status = %d, want %d", w.Code, http.StatusOK)
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}
	for _, field := range []string{"total_requests", "unique_ip", "status_distribution", "top_ips", "top_endpoints"} {
		if _, ok := body[field]; !ok {
			t.Errorf("report missing field %q", field)
		}
	}
}

func TestReportTextEndpoint(t *testing.T) {
	_, r := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/report/text", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("report text status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "=== Log Analysis Report ===") {
		t.Errorf("text body missing header: %q", w.Body.String())
	}
}

func TestReportEndpoint_WrongMethod(t *testing.T) {
	_, r := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/report", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Gin returns 404 for a route that exists only for another method
	if w.Code != http.StatusMethodNotAllowed && w.Code != http.StatusNotFound {
		t.Errorf("report POST status = %d, want 405 or 404", w.Code)
	}
}

func TestDefaultAddr(t *testing.T) {
	srv := NewServer("", model.Report{}, "stdin")
	if srv.addr != "127.0.0.1:3000" {
		t.Errorf("default addr = %q, want 127.0.0.1:3000", srv.addr)
	}
}
