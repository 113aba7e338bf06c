package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/toastify/pkg/assets"
	"github.com/vango-dev/toastify/pkg/engine"
	"github.com/vango-dev/toastify/pkg/middleware"
	"github.com/vango-dev/toastify/pkg/render"
	"github.com/vango-dev/toastify/pkg/toast"
	"github.com/vango-dev/toastify/pkg/vdom"
)

// Config configures a Server.
type Config struct {
	// Title is the page title (default: "Toastify").
	Title string

	// Lang is the page language (default: "en").
	Lang string

	// MetricsPath is where metrics are served (default: "/metrics").
	// Set to "-" to disable the endpoint.
	MetricsPath string

	// Registry collects the HTTP metrics and serves /metrics.
	// Default: a fresh registry.
	Registry *prometheus.Registry

	// TracerProvider overrides the global OpenTelemetry provider.
	TracerProvider trace.TracerProvider

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// CheckOrigin validates websocket origins. Default: same host only.
	CheckOrigin func(r *http.Request) bool

	// ShutdownTimeout bounds graceful shutdown (default: 10s).
	ShutdownTimeout time.Duration
}

func (c *Config) applyDefaults() {
	if c.Title == "" {
		c.Title = "Toastify"
	}
	if c.Lang == "" {
		c.Lang = "en"
	}
	if c.MetricsPath == "" {
		c.MetricsPath = "/metrics"
	}
	if c.Registry == nil {
		c.Registry = prometheus.NewRegistry()
	}
	if c.TracerProvider == nil {
		c.TracerProvider = otel.GetTracerProvider()
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
}

// Server serves one engine and its container.
type Server struct {
	config    Config
	engine    *engine.Engine
	container *toast.Container
	renderer  *render.Renderer
	assets    *assets.Bundle
	hub       *Hub
	tracer    trace.Tracer
	logger    *slog.Logger
	router    chi.Router

	// renderMu serializes container renders; Container is not safe for
	// concurrent use.
	renderMu sync.Mutex

	// pushMu is held from render to send so clients receive pushes in
	// render order.
	pushMu sync.Mutex

	unsubscribe func()
	closeOnce   sync.Once
	closed      chan struct{}
}

// New creates a server for e. ref, if non-nil, receives the container root
// after the first render.
func New(e *engine.Engine, cfg Config, ref *vdom.Ref) *Server {
	cfg.applyDefaults()
	logger := cfg.Logger.With("component", "server")
	bundle := assets.NewBundle("/assets/", map[string][]byte{
		"toastify.js":  []byte(ClientScript),
		"toastify.css": []byte(BaseStyles),
	})

	s := &Server{
		config:    cfg,
		engine:    e,
		container: toast.NewContainer(e, e.Options(), ref),
		renderer:  render.NewRenderer(render.RendererConfig{}),
		assets:    bundle,
		tracer:    cfg.TracerProvider.Tracer("toastify"),
		logger:    logger,
		closed:    make(chan struct{}),
	}

	checkOrigin := cfg.CheckOrigin
	if checkOrigin == nil {
		checkOrigin = sameOrigin
	}
	s.hub = NewHub(logger, checkOrigin)
	s.hub.onConnect = s.greet
	s.hub.onMessage = s.handleClientMessage

	s.router = s.routes()
	s.unsubscribe = e.Subscribe(s.handleEvent)
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.Tracing(middleware.WithTracerProvider(s.config.TracerProvider)))
	r.Use(middleware.Prometheus(middleware.WithRegistry(s.config.Registry)))

	r.Get("/", s.handlePage)
	r.Get("/container", s.handleContainer)
	r.Get("/ws", s.hub.HandleWebSocket)
	r.Handle("/assets/*", http.StripPrefix("/assets", s.assets))

	r.Route("/api/toasts", func(r chi.Router) {
		r.Post("/", s.handleShow)
		r.Delete("/", s.handleDismissAll)
		r.Patch("/{id}", s.handleUpdate)
		r.Delete("/{id}", s.handleDismiss)
		r.Post("/{id}/pause", s.handlePause)
		r.Post("/{id}/resume", s.handleResume)
		r.Post("/{id}/remove", s.handleRemove)
	})

	if s.config.MetricsPath != "-" {
		r.Handle(s.config.MetricsPath, promhttp.HandlerFor(s.config.Registry, promhttp.HandlerOpts{}))
	}
	return r
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Hub returns the websocket hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// RenderContainer renders the container to HTML inside a
// "toastify.render" span.
func (s *Server) RenderContainer(ctx context.Context) (string, error) {
	_, span := s.tracer.Start(ctx, "toastify.render")
	defer span.End()

	s.renderMu.Lock()
	root := s.container.Render()
	html, err := s.renderer.RenderToString(root)
	s.renderMu.Unlock()

	span.SetAttributes(
		attribute.Int("toastify.visible", s.engine.Len()),
		attribute.Int("toastify.queued", s.engine.Queued()),
		attribute.Int("toastify.bytes", len(html)),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	return html, nil
}

// RenderPage renders the full demo page.
func (s *Server) RenderPage(ctx context.Context) ([]byte, error) {
	html, err := s.RenderContainer(ctx)
	if err != nil {
		return nil, err
	}

	dir := ""
	if s.container.Options().RTL {
		dir = "rtl"
	}
	var buf bytes.Buffer
	err = s.renderer.RenderPage(&buf, render.PageData{
		Body:        vdom.Main(vdom.Raw(html)),
		Title:       s.config.Title,
		StyleSheets: []string{s.assets.Asset("toastify.css")},
		Scripts: []render.ScriptTag{
			{Src: s.assets.Asset("toastify.js"), Defer: true},
		},
		Lang: s.config.Lang,
		Dir:  dir,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// handleEvent pushes a fresh render to every client.
func (s *Server) handleEvent(ev engine.Event) {
	select {
	case <-s.closed:
		return
	default:
	}
	if ev.Kind == engine.EventAction || s.hub.ClientCount() == 0 {
		return
	}

	s.pushMu.Lock()
	defer s.pushMu.Unlock()
	html, err := s.RenderContainer(context.Background())
	if err != nil {
		s.logger.Error("render after event failed", "event", ev.Kind, "id", ev.ToastID, "error", err)
		return
	}
	s.hub.Broadcast(Message{Type: MessageRender, HTML: html})
}

// greet sends the current render to a newly connected client.
func (s *Server) greet(send func(Message)) {
	s.pushMu.Lock()
	defer s.pushMu.Unlock()
	html, err := s.RenderContainer(context.Background())
	if err != nil {
		s.logger.Error("initial render failed", "error", err)
		return
	}
	send(Message{Type: MessageRender, HTML: html})
}

func (s *Server) handleClientMessage(msg Message) {
	id := toast.ID(msg.ID)
	switch msg.Type {
	case MessagePause:
		s.engine.Pause(id)
	case MessageResume:
		s.engine.Resume(id)
	case MessageDismiss:
		s.engine.Dismiss(id)
	case MessageRemove:
		s.engine.Remove(id)
	case MessageBlur:
		s.engine.PauseAll()
	case MessageFocus:
		s.engine.ResumeAll()
	case MessageAction:
		s.engine.Action(id, msg.Action)
	default:
		s.logger.Debug("unknown client message", "type", msg.Type)
	}
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("toastify is ready", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	case <-s.closed:
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	s.hub.Close()
	return srv.Shutdown(shutdownCtx)
}

// Close stops event delivery and disconnects all clients. The engine is
// left running.
func (s *Server) Close() error {
	err := ErrServerClosed
	s.closeOnce.Do(func() {
		close(s.closed)
		s.unsubscribe()
		s.hub.Close()
		err = nil
	})
	return err
}

// sameOrigin accepts requests without an Origin header and those whose
// Origin host matches the request host.
func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, r.Host)
}
