package tui

import (
	"log"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/signboard/internal/model"
	"github.com/tinytelemetry/signboard/internal/rotation"
)

// StatusPublisher holds the latest snapshot for readers outside the loop.
type StatusPublisher struct {
	mu sync.RWMutex
	st model.DisplayStatus
}

var _ model.StatusReader = (*StatusPublisher)(nil)

func NewStatusPublisher() *StatusPublisher {
	return &StatusPublisher{}
}

func (p *StatusPublisher) Publish(st model.DisplayStatus) {
	p.mu.Lock()
	p.st = st
	p.mu.Unlock()
}

func (p *StatusPublisher) Status() model.DisplayStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.st
}

// Remote forwards commands into a running program.
type Remote struct {
	send func(tea.Msg)
}

// NewRemote takes the program's Send method.
func NewRemote(send func(tea.Msg)) *Remote {
	return &Remote{send: send}
}

func (r *Remote) Next() {
	log.Printf("tui: remote next")
	r.send(RemoteMsg{Command: rotation.CommandNext})
}

func (r *Remote) Prev() {
	log.Printf("tui: remote prev")
	r.send(RemoteMsg{Command: rotation.CommandPrev})
}

func (r *Remote) Retry() {
	log.Printf("tui: remote retry")
	r.send(RemoteMsg{Retry: true})
}
