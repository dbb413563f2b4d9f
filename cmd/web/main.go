package main

import (
	_ "embed"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/game"
	"github.com/tomz197/pong/internal/input"
	"github.com/tomz197/pong/internal/render/raster"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"

	defaultPreviewFrames = 90
	maxPreviewFrames     = 3600
	defaultPreviewSeed   = 1
)

//go:embed index.html
var htmlPage string

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal("failed to load .env", "err", err)
	}

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")

	settings, err := config.LoadSettings(os.Getenv("PONG_SETTINGS"))
	if err != nil {
		log.Fatal("failed to load settings", "err", err)
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort(host, port),
		Handler:           newRouter(settings, sshHost, rate.NewLimiter(10, 10)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info("Starting web server", "url", "http://"+srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal("server error", "err", err)
	}
}

func newRouter(settings config.Settings, sshHost string, previews *rate.Limiter) http.Handler {
	page := strings.ReplaceAll(htmlPage, "{{.SSHHost}}", sshHost)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, "ok")
	})
	r.Get("/preview.png", previewHandler(settings, previews))
	return r
}

// previewHandler renders the court after a number of steps with no player
// input. The same frames and seed always produce the same image.
func previewHandler(settings config.Settings, limiter *rate.Limiter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		frames, seed, err := parsePreviewQuery(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if limiter != nil && !limiter.Allow() {
			http.Error(w, "too many preview requests", http.StatusTooManyRequests)
			return
		}

		g := game.NewSeeded(settings, seed)
		for range frames {
			g.Step(input.Input{})
		}

		img := raster.New(settings.ScreenWidth, settings.ScreenHeight)
		g.Draw(img)

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		if err := img.EncodePNG(w); err != nil {
			log.Error("preview encode failed", "err", err)
		}
	}
}

func parsePreviewQuery(r *http.Request) (frames int, seed uint64, err error) {
	q := r.URL.Query()

	frames = defaultPreviewFrames
	if v := q.Get("frames"); v != "" {
		frames, err = strconv.Atoi(v)
		if err != nil || frames < 0 || frames > maxPreviewFrames {
			return 0, 0, fmt.Errorf("frames must be an integer in [0, %d]", maxPreviewFrames)
		}
	}

	seed = defaultPreviewSeed
	if v := q.Get("seed"); v != "" {
		seed, err = strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, 0, errors.New("seed must be an unsigned integer")
		}
	}
	return frames, seed, nil
}
