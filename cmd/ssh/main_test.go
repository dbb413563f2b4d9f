package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/tomz197/pong/internal/metrics"
)

func TestSizeTracker(t *testing.T) {
	s := newSizeTracker(80, 24)

	w, h, err := s.getSize()
	if err != nil || w != 80 || h != 24 {
		t.Fatalf("getSize = %d, %d, %v; want 80, 24, nil", w, h, err)
	}

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.update(100+i, 40)
			_, _, _ = s.getSize()
		}()
	}
	wg.Wait()

	s.update(120, 50)
	if w, h, _ := s.getSize(); w != 120 || h != 50 {
		t.Errorf("after update = %d, %d; want 120, 50", w, h)
	}
}

func TestNewAdmission(t *testing.T) {
	if l := newAdmission(0); l != nil {
		t.Error("zero rate should disable the limiter")
	}

	l := newAdmission(2)
	if !l.Allow() || !l.Allow() {
		t.Fatal("burst of 2 should be admitted")
	}
	if l.Allow() {
		t.Error("third immediate session should be rejected")
	}
}

func TestMetricsServer(t *testing.T) {
	m := metrics.New()
	m.Rejected("rate_limit")
	srv := newMetricsServer("127.0.0.1:0", m)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `pong_sessions_rejected_total{reason="rate_limit"} 1`) {
		t.Errorf("rejection counter missing from:\n%s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/other", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown route status = %d, want 404", rec.Code)
	}
}
