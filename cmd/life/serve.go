package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-life/internal/metrics"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagMetricsAddr string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server. Every connection gets its own grid and engine;
runs from all users go to the same history database.

Host key handling:
  - --host-key or server.host_key from the settings
  - relative paths resolve against the home directory
  - the key is generated on first start

Metrics:
  --metrics :9090 serves Prometheus metrics on /metrics

Examples:
  life serve                       # Listen on :2323
  life serve --ssh :2222           # Listen on port 2222
  life serve --metrics :9090       # Also expose /metrics

Users can connect with:
  ssh localhost -p 2323`,
	Run: runServe,
}

func init() {
	addEngineFlags(serveCmd)
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics", "", "Metrics HTTP address, empty to disable")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(os.Stderr)
	defer closeLog()

	settings := loadSettings(logger)
	cfg, brush, err := engineConfig(settings, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	idle := flagIdleTimeout
	if idle <= 0 {
		if idle, err = time.ParseDuration(settings.Server.IdleTimeout); err != nil {
			logger.Warn("bad idle timeout, using 30m", "value", settings.Server.IdleTimeout)
			idle = 30 * time.Minute
		}
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	srv, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     firstNonEmpty(flagSSHAddr, settings.Server.Addr),
		HostKeyPath: firstNonEmpty(flagHostKey, settings.Server.HostKeyPath),
		IdleTimeout: idle,
		Engine:      cfg,
		Brush:       brush,
		FrameRate:   settings.Terminal.FrameRate.Int(),
	}, store, metrics.Default(), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Serve(ctx)
	})

	if addr := firstNonEmpty(flagMetricsAddr, settings.Server.MetricsAddr); addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		httpSrv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

		g.Go(func() error {
			logger.Info("serving metrics", "address", addr)
			if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return httpSrv.Shutdown(shutdownCtx)
		})
	}

	fmt.Printf("Starting life SSH server on %s\n", srv.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
