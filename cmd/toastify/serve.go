package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vango-dev/toastify/internal/errors"
	"github.com/vango-dev/toastify/pkg/engine"
	"github.com/vango-dev/toastify/pkg/server"
	"github.com/vango-dev/toastify/pkg/toast"
)

type serveSettings struct {
	logLevel    slog.Level
	exitTimeout time.Duration
	title       string
	metricsPath string
	configPath  string
	demo        bool
}

func serveCmd() *cobra.Command {
	var (
		port int
		host string
		demo bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the toast server",
		Long: `Start the HTTP server.

The server renders the toast container, pushes updates to connected
browsers over /ws and accepts toasts on /api/toasts.

Examples:
  toastify serve
  toastify serve --port=8080 --demo
  toastify serve -c deploy/toastify.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, cmd, cfg.Address(), cfg.ToastOptions(), serveSettings{
				logLevel:    cfg.LogLevel(),
				exitTimeout: cfg.ExitTimeout(),
				title:       cfg.Server.Title,
				metricsPath: cfg.Server.MetricsPath,
				configPath:  cfg.Path(),
				demo:        demo,
			})
		},
	}

	addConfigFlag(cmd)
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")
	cmd.Flags().BoolVar(&demo, "demo", false, "Show a welcome toast on start")

	return cmd
}

func runServe(ctx context.Context, cmd *cobra.Command, addr string, opts toast.Options, s serveSettings) error {
	logger := newLogger(cmd.ErrOrStderr(), s.logLevel)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	eng := engine.New(
		engine.WithOptions(opts),
		engine.WithExitTimeout(s.exitTimeout),
		engine.WithLogger(logger),
		engine.WithMetrics(engine.NewMetrics(engine.WithRegistry(registry))),
	)
	defer eng.Close()
	defer logActions(eng, logger)()

	srv := server.New(eng, server.Config{
		Title:       s.title,
		MetricsPath: s.metricsPath,
		Registry:    registry,
		Logger:      logger,
	}, nil)
	defer srv.Close()

	out := cmd.OutOrStdout()
	printBanner(out)
	success(out, "Listening on http://%s", addr)
	if s.configPath != "" {
		info(out, "Config: %s", s.configPath)
	}

	if s.demo {
		toast.ShowWithTitle(eng, toast.TypeInfo, "Toastify", "The server is up. Try POST /api/toasts.",
			toast.WithAutoClose(0))
		toast.ShowWithAction(eng, toast.TypeSuccess, "Action buttons are reported to the server log.", "Try it", "demo",
			toast.WithAutoClose(0))
	}

	if err := srv.ListenAndServe(ctx, addr); err != nil {
		return errors.New("T153").Wrap(err)
	}
	return nil
}

// logActions logs the action clicks reported by browsers until the
// returned cancel is called.
func logActions(eng *engine.Engine, logger *slog.Logger) (cancel func()) {
	return eng.Subscribe(func(ev engine.Event) {
		if ev.Kind == engine.EventAction {
			logger.Info("toast action", "id", ev.ToastID, "action", ev.Action)
		}
	})
}
