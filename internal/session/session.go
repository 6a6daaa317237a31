package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"docimages/internal/config"
	"docimages/internal/logging"
	"docimages/internal/pipe"
)

// LockFileName is created inside the log directory while a session is set up.
const LockFileName = "docimages.lock"

// Conn is the transport a session drives.
type Conn interface {
	Send(command string) error
	Receive(ctx context.Context) (string, error)
	Close() error
}

// Opener opens a transport to the given endpoints.
type Opener func(ep pipe.Endpoints, logger *slog.Logger) (Conn, error)

// Option customizes a Session.
type Option func(*Session)

// WithOpener replaces the default pipe opener.
func WithOpener(open Opener) Option {
	return func(s *Session) {
		if open != nil {
			s.open = open
		}
	}
}

// WithTransport supplies an already open transport. Setup will not open pipes.
func WithTransport(conn Conn) Option {
	return func(s *Session) {
		s.conn = conn
	}
}

// WithLockPath overrides the lock file location. An empty path disables locking.
func WithLockPath(path string) Option {
	return func(s *Session) {
		s.lockPath = path
	}
}

// Session owns the pipe transport for one harness run. It is not safe for
// concurrent use.
type Session struct {
	cfg       *config.Config
	logger    *slog.Logger
	endpoints pipe.Endpoints
	open      Opener
	conn      Conn
	lockPath  string
	lock      *flock.Flock
	setupDone bool
}

// EndpointsFromConfig returns the host endpoints with any configured path
// overrides applied.
func EndpointsFromConfig(cfg *config.Config) pipe.Endpoints {
	ep := pipe.HostEndpoints()
	if cfg == nil {
		return ep
	}
	return ep.WithOverrides(cfg.Pipe.ToPath, cfg.Pipe.FromPath)
}

// New constructs a session. Nothing is opened until Setup.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) *Session {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	s := &Session{
		cfg:       cfg,
		logger:    logging.NewComponentLogger(logger, "session"),
		endpoints: EndpointsFromConfig(cfg),
		open:      openPipe,
	}
	if dir := strings.TrimSpace(cfg.Paths.LogDir); dir != "" {
		s.lockPath = filepath.Join(dir, LockFileName)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func openPipe(ep pipe.Endpoints, logger *slog.Logger) (Conn, error) {
	return pipe.Open(ep, logging.NewComponentLogger(logger, "pipe"))
}

// Endpoints reports the pipe endpoints this session uses.
func (s *Session) Endpoints() pipe.Endpoints {
	return s.endpoints
}

// Setup opens the pipes and applies the project geometry. Only the first call
// does any work.
func (s *Session) Setup(ctx context.Context) error {
	logger := logging.WithContext(ctx, s.logger)
	if s.setupDone {
		logger.Info("Already set up")
		return nil
	}

	if err := s.acquireLock(); err != nil {
		return err
	}
	if s.conn == nil {
		conn, err := s.open(s.endpoints, s.logger)
		if err != nil {
			s.releaseLock()
			return err
		}
		s.conn = conn
	}

	if _, err := s.Execute(ctx, s.cfg.SetProjectCommand()); err != nil {
		if !errors.Is(err, ErrCommandFailed) {
			s.shutdown()
			return fmt.Errorf("apply project geometry: %w", err)
		}
		logger.Warn("project geometry not applied", logging.Error(err))
	}

	s.setupDone = true
	logger.Info("Set up done")
	return nil
}

// Execute sends one command and returns its response. A response reporting
// failure is returned together with an error wrapping ErrCommandFailed.
func (s *Session) Execute(ctx context.Context, command string) (string, error) {
	if s.conn == nil {
		return "", ErrNotSetUp
	}
	logger := logging.WithContext(ctx, s.logger)

	if err := s.conn.Send(command); err != nil {
		return "", err
	}

	waitCtx := ctx
	if timeout := s.cfg.ResponseTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	response, err := s.conn.Receive(waitCtx)
	if err != nil {
		return response, fmt.Errorf("response to %q: %w", command, err)
	}
	logger.Info("Rcvd: <<<", logging.String(logging.FieldResponse, response))

	if ParseStatus(response) == StatusFailed {
		return response, fmt.Errorf("%q: %w", command, ErrCommandFailed)
	}
	return response, nil
}

// Close releases the pipes and the session lock.
func (s *Session) Close() error {
	return s.shutdown()
}

func (s *Session) shutdown() error {
	var err error
	if s.conn != nil {
		err = s.conn.Close()
		s.conn = nil
	}
	s.releaseLock()
	s.setupDone = false
	return err
}

func (s *Session) acquireLock() error {
	if s.lockPath == "" || s.lock != nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.lockPath), 0o755); err != nil {
		return fmt.Errorf("create lock directory: %w", err)
	}
	lock := flock.New(s.lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%s: %w", s.lockPath, ErrLocked)
	}
	s.lock = lock
	return nil
}

func (s *Session) releaseLock() {
	if s.lock == nil {
		return
	}
	if err := s.lock.Unlock(); err != nil {
		s.logger.Warn("failed to release session lock", logging.Error(err))
	}
	s.lock = nil
}
