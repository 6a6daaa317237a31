package pipe

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"docimages/internal/logging"
)

type flusher interface {
	Flush() error
}

type lineResult struct {
	line string
	err  error
}

// Transport carries commands to Audacity and responses back. It is not safe
// for concurrent use; one command is in flight at a time.
type Transport struct {
	w          io.Writer
	r          *bufio.Reader
	terminator string
	logger     *slog.Logger
	closers    []io.Closer

	startOnce sync.Once
	lines     chan lineResult
	done      chan struct{}
	closeOnce sync.Once

	// skip counts responses abandoned by cancelled receives that must be
	// drained before the next response is returned.
	skip int
	err  error
}

// New builds a transport over arbitrary streams.
func New(w io.Writer, r io.Reader, terminator string, logger *slog.Logger) *Transport {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Transport{
		w:          w,
		r:          bufio.NewReader(r),
		terminator: terminator,
		logger:     logger,
		lines:      make(chan lineResult),
		done:       make(chan struct{}),
	}
}

// Open verifies both endpoints exist and opens them. The write side is opened
// first, matching the order Audacity expects.
func Open(ep Endpoints, logger *slog.Logger) (*Transport, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger.Info("write to", logging.String("path", ep.WritePath))
	if err := checkExists(ep.WritePath); err != nil {
		return nil, err
	}
	logger.Info("read from", logging.String("path", ep.ReadPath))
	if err := checkExists(ep.ReadPath); err != nil {
		return nil, err
	}
	logger.Info("both pipes exist")

	toFile, err := os.OpenFile(ep.WritePath, writeFlags, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open write pipe %q: %w", ep.WritePath, err)
	}
	logger.Debug("write pipe opened")

	fromFile, err := os.Open(ep.ReadPath)
	if err != nil {
		_ = toFile.Close()
		return nil, fmt.Errorf("open read pipe %q: %w", ep.ReadPath, err)
	}
	logger.Debug("read pipe opened")

	t := New(toFile, fromFile, ep.Terminator, logger)
	t.closers = []io.Closer{toFile, fromFile}
	return t, nil
}

// Send writes one command followed by the terminator in a single write and
// flushes it. The command is sent verbatim.
func (t *Transport) Send(command string) error {
	select {
	case <-t.done:
		return ErrClosed
	default:
	}
	t.logger.Info("Send: >>>", logging.String(logging.FieldCommand, command))
	if _, err := io.WriteString(t.w, command+t.terminator); err != nil {
		return fmt.Errorf("send command: %w", err)
	}
	if f, ok := t.w.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush command: %w", err)
		}
	}
	return nil
}

// Receive returns the next response: every line up to, but excluding, the
// first empty line. It waits until ctx is done. When ctx ends first, the
// error wraps ErrTimeout and the rest of that response is discarded by the
// next call. End of stream yields ErrPeerClosed with whatever text arrived.
func (t *Transport) Receive(ctx context.Context) (string, error) {
	if t.err != nil {
		return "", t.err
	}
	t.startOnce.Do(func() { go t.readLines() })

	for t.skip > 0 {
		if _, err := t.collect(ctx); err != nil {
			return "", t.fail(err)
		}
		t.skip--
		t.logger.Debug("discarded abandoned response")
	}

	response, err := t.collect(ctx)
	if err != nil {
		return response, t.fail(err)
	}
	return response, nil
}

// fail records sticky stream errors and schedules a drain when a wait is
// abandoned mid-response.
func (t *Transport) fail(err error) error {
	if ctxErr := contextError(err); ctxErr != nil {
		t.skip++
		return fmt.Errorf("%w: %w", ErrTimeout, ctxErr)
	}
	t.err = err
	return err
}

func contextError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (t *Transport) collect(ctx context.Context) (string, error) {
	var b strings.Builder
	for {
		select {
		case <-ctx.Done():
			return b.String(), ctx.Err()
		case <-t.done:
			return b.String(), ErrClosed
		case res := <-t.lines:
			if res.line != "" {
				line := normalizeLine(res.line)
				if line == "\n" {
					return b.String(), nil
				}
				b.WriteString(line)
			}
			if res.err != nil {
				if errors.Is(res.err, io.EOF) {
					return b.String(), ErrPeerClosed
				}
				return b.String(), fmt.Errorf("read response: %w", res.err)
			}
		}
	}
}

func (t *Transport) readLines() {
	for {
		line, err := t.r.ReadString('\n')
		select {
		case t.lines <- lineResult{line: line, err: err}:
		case <-t.done:
			return
		}
		if err != nil {
			return
		}
	}
}

// normalizeLine reads CRLF endings as LF.
func normalizeLine(line string) string {
	if strings.HasSuffix(line, "\r\n") {
		return line[:len(line)-2] + "\n"
	}
	return line
}

// Close releases both pipe handles and stops the background reader.
func (t *Transport) Close() error {
	var errs []error
	t.closeOnce.Do(func() {
		close(t.done)
		for _, c := range t.closers {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	})
	return errors.Join(errs...)
}
