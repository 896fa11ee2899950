package tui

import (
	"sync"

	"github.com/BannedPenta01/Citron-Xbox-WIP/internal/errdefs"
)

type pickReply struct {
	path string
	err  error
}

type pickRequest struct {
	title string
	reply chan pickReply
}

// Picker is a shell.FolderPicker answered by a prompt inside the terminal
// UI. PickFolder blocks its caller until the model takes the request.
type Picker struct {
	requests chan pickRequest
	done     chan struct{}
	once     sync.Once
}

func NewPicker() *Picker {
	return &Picker{
		requests: make(chan pickRequest),
		done:     make(chan struct{}),
	}
}

func (p *Picker) PickFolder(title string) (string, error) {
	req := pickRequest{title: title, reply: make(chan pickReply, 1)}
	select {
	case p.requests <- req:
	case <-p.done:
		return "", errdefs.ErrPickerCancelled
	}

	select {
	case r := <-req.reply:
		return r.path, r.err
	case <-p.done:
		return "", errdefs.ErrPickerCancelled
	}
}

// Close cancels pending and future picks
func (p *Picker) Close() {
	p.once.Do(func() { close(p.done) })
}

// next returns a waiting request without blocking
func (p *Picker) next() (pickRequest, bool) {
	select {
	case req := <-p.requests:
		return req, true
	default:
		return pickRequest{}, false
	}
}
