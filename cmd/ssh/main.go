package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/go-chi/chi/v5"
	"github.com/oklog/ulid/v2"
	"golang.org/x/time/rate"

	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/loop"
	loopcfg "github.com/tomz197/pong/internal/loop/config"
	"github.com/tomz197/pong/internal/metrics"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
	defaultMetricsAddr = "127.0.0.1:9100"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal("failed to load .env", "err", err)
	}

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	metricsAddr := config.GetEnv("METRICS_ADDR", defaultMetricsAddr)
	perSecond := config.GetEnvInt("SSH_MAX_SESSIONS_PER_SEC", 5)

	settings, err := config.LoadSettings(os.Getenv("PONG_SETTINGS"))
	if err != nil {
		log.Fatal("failed to load settings", "err", err)
	}
	log.Info("SSH config", "host", host, "port", port, "hostKeyPath", hostKeyPath, "metrics", metricsAddr)

	m := metrics.New()
	sessions := &sessionHandler{
		settings: settings,
		metrics:  m,
		limiter:  newAdmission(perSecond),
		logger:   log.Default(),
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			sessions.middleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(log.Default()),
		),
		// TCP_NODELAY keeps key presses from being batched.
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		log.Fatal("failed to create server", "err", err)
	}

	var metricsServer *http.Server
	if metricsAddr != "" {
		metricsServer = newMetricsServer(metricsAddr, m)
		go func() {
			log.Info("Starting metrics server", "addr", metricsAddr)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server error", "err", err)
			}
		}()
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	log.Info("Starting SSH server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Fatal("server error", "err", err)
		}
	}()

	<-done
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if metricsServer != nil {
		_ = metricsServer.Shutdown(ctx)
	}
	if err := s.Shutdown(ctx); err != nil {
		log.Fatal("shutdown error", "err", err)
	}
}

func newMetricsServer(addr string, m *metrics.Metrics) *http.Server {
	r := chi.NewRouter()
	r.Handle("/metrics", m.Handler())
	return &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// newAdmission returns the limiter for new sessions, or nil for no limit.
func newAdmission(perSecond int) *rate.Limiter {
	if perSecond <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(perSecond), perSecond)
}

// sessionHandler runs one independent match per SSH session.
type sessionHandler struct {
	settings config.Settings
	metrics  *metrics.Metrics
	limiter  *rate.Limiter
	logger   *log.Logger
}

func (h *sessionHandler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		h.serve(sess)
		next(sess)
	}
}

func (h *sessionHandler) serve(sess ssh.Session) {
	pty, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
		return
	}
	if h.limiter != nil && !h.limiter.Allow() {
		h.metrics.Rejected("rate_limit")
		fmt.Fprintln(sess, "Server busy, please try again in a moment.")
		return
	}

	id := ulid.Make().String()
	logger := h.logger.With("session", id, "user", sess.User())
	logger.Info("New game session", "terminal", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

	sizes := newSizeTracker(pty.Window.Width, pty.Window.Height)
	go func() {
		for win := range winCh {
			sizes.update(win.Width, win.Height)
		}
	}()

	done := h.metrics.SessionStarted()
	defer done()

	err := loop.Run(bufio.NewReader(sess), sess, loop.Options{
		Settings:     h.settings,
		Seed:         config.GetSeed(),
		TermSizeFunc: sizes.getSize,
		IdleTimeout:  loopcfg.InactivityDisconnect,
		Hooks:        h.metrics.Hooks(),
	})
	if err != nil {
		logger.Error("Game error", "err", err)
	}
	logger.Info("Session ended")
}
