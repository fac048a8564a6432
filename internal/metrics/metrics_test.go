package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func Test_Metrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveFetch(time.Now(), nil)
	m.ObserveFetch(time.Now(), nil)
	m.ObserveFetch(time.Now(), errors.New("boom"))
	m.Outcome("DISPLAYING")
	m.LoopStarted()
	m.LoopStarted()
	m.LoopStopped()

	if got := testutil.ToFloat64(m.fetches.WithLabelValues("ok")); got != 2 {
		t.Errorf("fetch_total{result=ok} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.fetches.WithLabelValues("error")); got != 1 {
		t.Errorf("fetch_total{result=error} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.outcomes.WithLabelValues("DISPLAYING")); got != 1 {
		t.Errorf("outcome_total{outcome=DISPLAYING} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.loops); got != 1 {
		t.Errorf("poll_loops_active = %v, want 1", got)
	}
}

func Test_Metrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveFetch(time.Now(), nil)
	m.Outcome("x")
	m.LoopStarted()
	m.LoopStopped()
}

func Test_Handler_ServesRegisteredMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.ObserveFetch(time.Now(), nil)

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET metrics: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if !strings.Contains(string(body), "dock_status_fetch_total") {
		t.Errorf("metrics output missing dock_status_fetch_total:\n%s", body)
	}
}
