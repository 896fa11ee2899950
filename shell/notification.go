package shell

import (
	"sync"
	"time"

	"github.com/BannedPenta01/Citron-Xbox-WIP/internal/errdefs"
)

// NoticeLevel determines the visual style of a notice
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeError
)

// DefaultNoticeDuration is how long a notice stays on screen
const DefaultNoticeDuration = 3 * time.Second

// Notice is a user-visible message
type Notice struct {
	Title   string
	Message string
	Level   NoticeLevel
}

// Notifier receives every notice shown, e.g. to raise a native dialog.
// Implementations must not block the caller.
type Notifier interface {
	Notify(n Notice)
}

// Notification keeps the notice currently on screen
type Notification struct {
	mu        sync.Mutex
	notice    Notice
	startTime time.Time
	duration  time.Duration

	sinks []Notifier
}

// NewNotification creates a new notification board. Each sink is told
// about every notice in addition to the on-screen overlay.
func NewNotification(sinks ...Notifier) *Notification {
	return &Notification{sinks: sinks}
}

// Show displays a notice from now for duration
func (n *Notification) Show(notice Notice, now time.Time, duration time.Duration) {
	n.mu.Lock()
	n.notice = notice
	n.startTime = now
	n.duration = duration
	sinks := n.sinks
	n.mu.Unlock()

	for _, s := range sinks {
		s.Notify(notice)
	}
}

// ShowDefault displays a notice with the default duration
func (n *Notification) ShowDefault(notice Notice, now time.Time) {
	n.Show(notice, now, DefaultNoticeDuration)
}

// ShowError displays err titled by its error type
func (n *Notification) ShowError(err error, now time.Time) {
	n.ShowDefault(Notice{
		Title:   errdefs.TypeOf(err).String(),
		Message: err.Error(),
		Level:   NoticeError,
	}, now)
}

// Current returns the notice visible at now
func (n *Notification) Current(now time.Time) (Notice, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.notice.Message == "" || now.Sub(n.startTime) >= n.duration {
		return Notice{}, false
	}
	return n.notice, true
}

// Clear removes the current notice
func (n *Notification) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notice = Notice{}
}
