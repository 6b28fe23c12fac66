package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/metrics"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":2323").
	Address string

	// HostKeyPath is the path to the host key file. Relative paths resolve
	// against the home directory; the key is generated when missing.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Engine and Brush seed every session's engine.
	Engine    life.Config
	Brush     life.BrushState
	FrameRate int
}

// SSHServer serves one life engine per SSH session.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	store   *storage.Store
	metrics *metrics.Metrics
	logger  *log.Logger

	mu       sync.Mutex
	sessions map[string]Model // live models by session ID
}

// NewSSHServer creates a new SSH server. store and m may be nil.
func NewSSHServer(cfg SSHServerConfig, store *storage.Store, m *metrics.Metrics, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.Default()
	}
	srv := &SSHServer{
		config:   cfg,
		store:    store,
		metrics:  m,
		logger:   logger.WithPrefix("ssh"),
		sessions: make(map[string]Model),
	}

	hostKeyPath, err := resolveHostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

func resolveHostKeyPath(path string) (string, error) {
	if path == "" {
		path = filepath.Join(".life", "host_key")
	}
	if strings.HasPrefix(path, "~/") {
		path = path[2:]
	}
	if filepath.IsAbs(path) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return filepath.Join(home, path), nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	if _, _, ok := sess.Pty(); !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	opts := Options{
		Config:    s.config.Engine,
		Brush:     s.config.Brush,
		FrameRate: s.config.FrameRate,
		Host:      "ssh",
		Store:     s.store,
		Logger:    s.logger.With("user", sess.User()),
		Styles:    NewStyles(bubbletea.MakeRenderer(sess)),
	}
	if s.metrics != nil {
		opts.Observer = metrics.NewRecorder(s.metrics, "ssh")
	}

	model := NewModel(opts)
	s.track(sess.Context().SessionID(), model)
	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}

// track remembers the model serving a session until the session ends.
func (s *SSHServer) track(id string, m Model) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = m
}

// finish saves the run of an ended session and forgets its model.
func (s *SSHServer) finish(id string) {
	s.mu.Lock()
	m, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if ok {
		m.saveRun()
	}
}

// loggingMiddleware logs SSH session events and tracks active sessions.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		started := time.Now()
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		if s.metrics != nil {
			s.metrics.SessionStarted()
			defer s.metrics.SessionEnded()
		}
		next(sess)
		s.finish(sess.Context().SessionID())
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"duration", time.Since(started).Round(time.Second),
		)
	}
}

// Serve runs the server until ctx is cancelled, then shuts it down.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown()
	}
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
