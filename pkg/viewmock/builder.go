package viewmock

import (
	"fmt"
)

// Builder is a View that starts with no observed fields. Fields are opted in
// one by one with WithField, each taking a snapshot of the current value.
type Builder[M Notifier] struct {
	*View[M]

	err error
}

// ObservePartial creates a view of model that observes no field until one is
// added with WithField.
func ObservePartial[M Notifier](model M) (*Builder[M], error) {
	v, err := newView(model)
	if err != nil {
		return nil, err
	}

	return &Builder[M]{View: v}, nil
}

// WithField starts observing the field a selector reads. After the first
// failure the builder ignores further calls; the failure is reported by Err.
func (b *Builder[M]) WithField(selector string) *Builder[M] {
	if b.err != nil {
		return b
	}

	d, err := b.members.resolve(selector)
	if err != nil {
		b.err = fmt.Errorf("with field %q: %w", selector, err)
		return b
	}

	b.snapshot(d)

	return b
}

// WithFieldOf starts observing the field whose address accessor returns.
func (b *Builder[M]) WithFieldOf(accessor func(M) any) *Builder[M] {
	if b.err != nil {
		return b
	}

	d, err := b.members.fieldAt(accessor(b.model))
	if err != nil {
		b.err = fmt.Errorf("with field: %w", err)
		return b
	}

	b.snapshot(d)

	return b
}

// Err returns the first WithField failure.
func (b *Builder[M]) Err() error {
	return b.err
}

// Build returns the underlying view, or the first WithField failure.
func (b *Builder[M]) Build() (*View[M], error) {
	if b.err != nil {
		return nil, b.err
	}

	return b.View, nil
}
