package budget

import (
	"fmt"
	"sync"
	"time"
)

// NotificationLevel distinguishes routine outcomes from failures.
type NotificationLevel int

const (
	Info NotificationLevel = iota
	Error
)

func (l NotificationLevel) String() string {
	if l == Error {
		return "error"
	}
	return "info"
}

// Notification is a single ephemeral user-facing message.
type Notification struct {
	Level   NotificationLevel
	Text    string
	Expires time.Time // after this instant the message is silently dropped
}

// DefaultNotificationTTL is how long a queued message stays deliverable.
const DefaultNotificationTTL = 3 * time.Second

// Notifier is a time-limited message queue. Components push outcomes into
// it; the view drains it and renders whatever has not expired yet. It is
// safe for use from the background rate refresh.
type Notifier struct {
	mu    sync.Mutex
	ttl   time.Duration
	queue []Notification
	now   func() time.Time
}

// NewNotifier creates a notifier with the default message lifetime.
func NewNotifier() *Notifier {
	return &Notifier{ttl: DefaultNotificationTTL, now: time.Now}
}

// Infof queues an informational message.
func (n *Notifier) Infof(format string, args ...any) {
	n.push(Info, fmt.Sprintf(format, args...))
}

// Errorf queues an error message.
func (n *Notifier) Errorf(format string, args ...any) {
	n.push(Error, fmt.Sprintf(format, args...))
}

func (n *Notifier) push(level NotificationLevel, text string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.queue = append(n.queue, Notification{
		Level:   level,
		Text:    text,
		Expires: n.now().Add(n.ttl),
	})
}

// Drain empties the queue and returns the messages that are still alive.
func (n *Notifier) Drain() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	now := n.now()
	var alive []Notification
	for _, msg := range n.queue {
		if msg.Expires.After(now) {
			alive = append(alive, msg)
		}
	}
	n.queue = nil
	return alive
}
