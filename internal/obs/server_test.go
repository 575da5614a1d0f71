package obs

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestServerHealthEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	cfg := DefaultServerConfig()
	cfg.RequestsPerSecond = 1000
	cfg.Burst = 1000

	srv := httptest.NewServer(NewServer(cfg, reg, nil, nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestServerSnapshotEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	cfg := DefaultServerConfig()
	cfg.RequestsPerSecond = 1000
	cfg.Burst = 1000

	want := Snapshot{State: "FALLING", PieceType: "T", TotalTicks: 7}
	srv := httptest.NewServer(NewServer(cfg, reg, nil, func() Snapshot { return want }))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/snapshot")
	if err != nil {
		t.Fatalf("GET /snapshot: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestServerRateLimitRejectsBurst(t *testing.T) {
	reg := prometheus.NewRegistry()
	cfg := DefaultServerConfig()
	cfg.RequestsPerSecond = 1
	cfg.Burst = 1

	srv := httptest.NewServer(NewServer(cfg, reg, nil, nil))
	defer srv.Close()

	first, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	first.Body.Close()

	second, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health (second): %v", err)
	}
	defer second.Body.Close()
	if second.StatusCode != http.StatusTooManyRequests {
		t.Errorf("expected 429 on immediate second request past burst, got %d", second.StatusCode)
	}
}
