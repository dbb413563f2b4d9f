package main

import (
	"bytes"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"github.com/tomz197/pong/internal/config"
)

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func smallSettings() config.Settings {
	s := config.Default()
	s.ScreenWidth = 320
	s.ScreenHeight = 200
	s.BallRadius = 5
	s.PaddleHeight = 30
	s.PaddleWidth = 6
	s.CenterCircleRadius = 40
	s.ScoreFontSize = 21
	return s
}

func TestIndexPage(t *testing.T) {
	h := newRouter(smallSettings(), "pong.example.com", nil)

	rec := get(t, h, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "ssh -t pong.example.com") {
		t.Error("page does not show the SSH host")
	}
	if strings.Contains(body, "{{.SSHHost}}") {
		t.Error("placeholder left in page")
	}
}

func TestHealthz(t *testing.T) {
	rec := get(t, newRouter(smallSettings(), "", nil), "/healthz")
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("healthz = %d %q", rec.Code, rec.Body.String())
	}
}

func TestPreview(t *testing.T) {
	s := smallSettings()
	h := newRouter(s, "", nil)

	rec := get(t, h, "/preview.png?frames=30&seed=7")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q", ct)
	}
	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != s.ScreenWidth || b.Dy() != s.ScreenHeight {
		t.Errorf("size = %dx%d", b.Dx(), b.Dy())
	}

	again := get(t, h, "/preview.png?frames=30&seed=7")
	if !bytes.Equal(rec.Body.Bytes(), again.Body.Bytes()) {
		t.Error("same frames and seed produced different images")
	}
}

func TestPreview_BadQuery(t *testing.T) {
	h := newRouter(smallSettings(), "", nil)

	for _, q := range []string{
		"frames=-1",
		"frames=3601",
		"frames=ten",
		"seed=-3",
		"seed=abc",
	} {
		t.Run(q, func(t *testing.T) {
			if rec := get(t, h, "/preview.png?"+q); rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestPreview_RateLimited(t *testing.T) {
	h := newRouter(smallSettings(), "", rate.NewLimiter(rate.Every(time.Hour), 1))

	if rec := get(t, h, "/preview.png?frames=0"); rec.Code != http.StatusOK {
		t.Fatalf("first preview status = %d", rec.Code)
	}
	if rec := get(t, h, "/preview.png?frames=0"); rec.Code != http.StatusTooManyRequests {
		t.Errorf("second preview status = %d, want 429", rec.Code)
	}
}

func TestParsePreviewQuery_Defaults(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/preview.png", nil)
	frames, seed, err := parsePreviewQuery(req)
	if err != nil {
		t.Fatal(err)
	}
	if frames != defaultPreviewFrames || seed != defaultPreviewSeed {
		t.Errorf("defaults = %d, %d", frames, seed)
	}
}
