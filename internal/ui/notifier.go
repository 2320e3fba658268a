package ui

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severity is the style of a notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// DefaultLifetime is how long a notification stays before it is removed.
const DefaultLifetime = 3 * time.Second

// Notification is a transient status message.
type Notification struct {
	ID        string        `json:"id"`
	Message   string        `json:"message"`
	Severity  Severity      `json:"severity"`
	CreatedAt time.Time     `json:"created_at"`
	Lifetime  time.Duration `json:"-"`
}

// ChangeFunc observes the notifier. shown is true when n appears and false
// when n is removed.
type ChangeFunc func(n Notification, shown bool)

// Notifier holds at most one notification. A new notification replaces the
// current one and cancels its removal timer.
type Notifier struct {
	// deliver orders change events: it is held across each state change
	// and its onChange call.
	deliver sync.Mutex

	mu       sync.Mutex
	lifetime time.Duration
	manual   bool
	now      func() time.Time
	onChange ChangeFunc

	current *Notification
	timer   *time.Timer
	closed  bool
}

// NotifierOption configures a Notifier.
type NotifierOption func(*Notifier)

// WithLifetime overrides DefaultLifetime.
func WithLifetime(d time.Duration) NotifierOption {
	return func(n *Notifier) {
		if d > 0 {
			n.lifetime = d
		}
	}
}

// WithManualDismiss disables the internal timer. The host schedules removal
// itself (for example with tea.Tick) and calls Dismiss.
func WithManualDismiss() NotifierOption {
	return func(n *Notifier) { n.manual = true }
}

// WithClock sets the time source used for CreatedAt.
func WithClock(now func() time.Time) NotifierOption {
	return func(n *Notifier) { n.now = now }
}

// OnChange registers the observer. Events arrive in the order the state
// changed, possibly from the timer goroutine. fn must not call back into the
// Notifier.
func OnChange(fn ChangeFunc) NotifierOption {
	return func(n *Notifier) { n.onChange = fn }
}

// NewNotifier creates a Notifier.
func NewNotifier(opts ...NotifierOption) *Notifier {
	n := &Notifier{lifetime: DefaultLifetime, now: time.Now}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Lifetime returns how long each notification is displayed.
func (n *Notifier) Lifetime() time.Duration { return n.lifetime }

// Notify replaces the current notification with a new one and schedules
// its removal. An empty severity means info.
func (n *Notifier) Notify(message string, severity Severity) Notification {
	if severity == "" {
		severity = SeverityInfo
	}
	note := Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  severity,
		CreatedAt: n.now(),
		Lifetime:  n.lifetime,
	}

	n.deliver.Lock()
	defer n.deliver.Unlock()

	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.current = &note
	if !n.manual && !n.closed {
		id := note.ID
		n.timer = time.AfterFunc(n.lifetime, func() { n.Dismiss(id) })
	}
	onChange := n.onChange
	n.mu.Unlock()

	if onChange != nil {
		onChange(note, true)
	}
	return note
}

// Current returns the displayed notification, if any.
func (n *Notifier) Current() (Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return Notification{}, false
	}
	return *n.current, true
}

// Dismiss removes the notification with the given id. Ids of notifications
// that were already replaced are ignored.
func (n *Notifier) Dismiss(id string) bool {
	n.deliver.Lock()
	defer n.deliver.Unlock()

	n.mu.Lock()
	if n.current == nil || n.current.ID != id {
		n.mu.Unlock()
		return false
	}
	removed := *n.current
	n.current = nil
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	onChange := n.onChange
	n.mu.Unlock()

	if onChange != nil {
		onChange(removed, false)
	}
	return true
}

// Close cancels any pending removal. Later notifications are kept until
// replaced or dismissed.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = true
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
