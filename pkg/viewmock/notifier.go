package viewmock

import (
	"sync"
)

// AllFields is the field name a model notifies to announce that every field
// may have changed.
const AllFields = ""

// ChangeHandler receives change notifications from a model. A returned error
// is propagated back to the code that raised the notification.
type ChangeHandler func(sender any, field string) error

// Notifier is implemented by models that announce field changes.
type Notifier interface {
	Subscribe(handler ChangeHandler)
}

// Notifications is an embeddable Notifier. Handlers run synchronously, in
// subscription order, on the goroutine calling Notify.
type Notifications struct {
	mu       sync.Mutex
	handlers []ChangeHandler
}

var _ Notifier = (*Notifications)(nil)

// Subscribe registers handler for all subsequent notifications.
func (n *Notifications) Subscribe(handler ChangeHandler) {
	if handler == nil {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.handlers = append(n.handlers, handler)
}

// Notify announces a change of field to every subscriber. It stops at the
// first handler that fails and returns its error.
func (n *Notifications) Notify(sender any, field string) error {
	n.mu.Lock()
	handlers := make([]ChangeHandler, len(n.handlers))
	copy(handlers, n.handlers)
	n.mu.Unlock()

	for _, handler := range handlers {
		if err := handler(sender, field); err != nil {
			return err
		}
	}

	return nil
}

// NotifyAll announces that every field may have changed.
func (n *Notifications) NotifyAll(sender any) error {
	return n.Notify(sender, AllFields)
}

// Subscribers returns the number of registered handlers.
func (n *Notifications) Subscribers() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return len(n.handlers)
}
