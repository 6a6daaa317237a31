package testsupport

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// OKResponse is the reply Audacity sends for a successful command.
const OKResponse = "BatchCommand finished: OK\n"

// FailedResponse is the reply Audacity sends for a failed command.
const FailedResponse = "BatchCommand finished: Failed!\n"

// FakePeer is an in-memory stand-in for the Audacity side of the pipes. It
// records every command and answers from a per-command script, falling back
// to OKResponse.
type FakePeer struct {
	mu        sync.Mutex
	commands  []string
	replies   map[string]string
	hang      map[string]bool
	pending   []string
	closed    bool
	SendErr   error
	CloseHits int
}

// NewFakePeer returns a peer that answers every command with OKResponse.
func NewFakePeer() *FakePeer {
	return &FakePeer{replies: map[string]string{}, hang: map[string]bool{}}
}

// Reply scripts the response for commands starting with prefix.
func (p *FakePeer) Reply(prefix, response string) *FakePeer {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.replies[prefix] = response
	return p
}

// Hang makes commands starting with prefix never receive a response.
func (p *FakePeer) Hang(prefix string) *FakePeer {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hang[prefix] = true
	return p
}

// Send records the command and queues its response.
func (p *FakePeer) Send(command string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return errors.New("fake peer closed")
	}
	if p.SendErr != nil {
		return p.SendErr
	}
	p.commands = append(p.commands, command)
	for prefix := range p.hang {
		if strings.HasPrefix(command, prefix) {
			return nil
		}
	}
	response := OKResponse
	for prefix, reply := range p.replies {
		if strings.HasPrefix(command, prefix) {
			response = reply
			break
		}
	}
	p.pending = append(p.pending, response)
	return nil
}

// Receive returns the oldest queued response, or waits for ctx when none is
// queued.
func (p *FakePeer) Receive(ctx context.Context) (string, error) {
	p.mu.Lock()
	if len(p.pending) > 0 {
		response := p.pending[0]
		p.pending = p.pending[1:]
		p.mu.Unlock()
		return response, nil
	}
	p.mu.Unlock()
	<-ctx.Done()
	return "", ctx.Err()
}

// Close marks the peer closed.
func (p *FakePeer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.CloseHits++
	return nil
}

// Commands returns a copy of the recorded commands.
func (p *FakePeer) Commands() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.commands...)
}
