package viewmock

import (
	"fmt"
	"sort"
	"sync"
)

// FieldSource is implemented by models whose fields are not Go struct
// fields. Views enumerate and read such models through it instead of
// reflection.
type FieldSource interface {
	FieldNames() []string
	FieldValue(name string) (any, bool)
}

// Record is a map-backed observable model. Set mutates and notifies,
// SetSilently mutates without notifying.
type Record struct {
	Notifications

	mu     sync.RWMutex
	values map[string]any
}

var (
	_ Notifier    = (*Record)(nil)
	_ FieldSource = (*Record)(nil)
)

// NewRecord returns a record holding a copy of fields.
func NewRecord(fields map[string]any) *Record {
	values := make(map[string]any, len(fields))
	for k, v := range fields {
		values[k] = v
	}

	return &Record{values: values}
}

// FieldNames returns the record's field names in sorted order.
func (r *Record) FieldNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.values))
	for name := range r.values {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// FieldValue returns the value of name and whether the record declares it.
func (r *Record) FieldValue(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[name]

	return v, ok
}

// Set stores value under name and notifies subscribers.
func (r *Record) Set(name string, value any) error {
	if name == AllFields {
		return fmt.Errorf("%w: empty field name", ErrUnknownField)
	}

	r.SetSilently(name, value)

	return r.Notify(r, name)
}

// SetSilently stores value under name without notifying anyone.
func (r *Record) SetSilently(name string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[name] = value
}
