package viewmock

import (
	"fmt"
	"log/slog"
	"reflect"
	"sort"
)

// View simulates a view bound to a model. It caches the value of every
// observed field as the view would display it and only updates the cache
// when the model notifies a change.
//
// A View is not safe for concurrent use. It subscribes to the model when it
// is created and never unsubscribes.
type View[M Notifier] struct {
	model     M
	members   members
	displayed map[string]any
	lastError string
}

// Staleness describes an observed field whose displayed value differs from
// the model's actual value.
type Staleness struct {
	Field     string
	Displayed any
	Actual    any
}

// Observe creates a view that displays every declared field of model.
func Observe[M Notifier](model M) (*View[M], error) {
	v, err := newView(model)
	if err != nil {
		return nil, err
	}

	v.snapshotAll()

	return v, nil
}

func newView[M Notifier](model M) (*View[M], error) {
	mem, err := membersOf(model)
	if err != nil {
		return nil, err
	}

	v := &View[M]{
		model:     model,
		members:   mem,
		displayed: make(map[string]any),
	}

	model.Subscribe(v.handle)

	return v, nil
}

// handle is the change handler registered on the model.
func (v *View[M]) handle(sender any, field string) error {
	if field == AllFields {
		v.snapshotAll()
		slog.Debug("view refreshed", "model", fmt.Sprintf("%T", v.model), "fields", len(v.displayed))

		return nil
	}

	d, err := v.members.field(field)
	if err != nil {
		slog.Error("model notified an undeclared field", "model", fmt.Sprintf("%T", sender), "field", field)
		return unknownNotifiedError(field)
	}

	v.snapshot(d)

	return nil
}

func (v *View[M]) snapshotAll() {
	for _, name := range v.members.names() {
		d, err := v.members.field(name)
		if err != nil {
			continue
		}

		v.snapshot(d)
	}
}

func (v *View[M]) snapshot(d FieldDescriptor) {
	value := v.members.value(d)
	v.displayed[d.Name] = value
	slog.Debug("snapshot", "field", d.Name, "value", value)
}

// Model returns the observed model.
func (v *View[M]) Model() M {
	return v.model
}

// Field resolves the descriptor of the field a selector reads.
func (v *View[M]) Field(selector string) (FieldDescriptor, error) {
	return v.members.resolve(selector)
}

// Method resolves the descriptor of a zero-argument call selector.
func (v *View[M]) Method(selector string) (MethodDescriptor, error) {
	return v.members.method(selector)
}

// Displayed returns the value the view currently displays for a field.
func (v *View[M]) Displayed(selector string) (any, error) {
	name, err := FieldName(selector)
	if err != nil {
		return nil, err
	}

	value, ok := v.displayed[name]
	if !ok {
		return nil, notObservedError(name)
	}

	return value, nil
}

// Actual reads the model's current value of a field, ignoring the cache.
func (v *View[M]) Actual(selector string) (any, error) {
	d, err := v.members.resolve(selector)
	if err != nil {
		return nil, err
	}

	return v.members.value(d), nil
}

// IsDisplayedAs reports whether the view displays expected for a field. When
// the displayed value is nil, or the model holds expected while the view
// does not, LastError explains that a notification is missing.
func (v *View[M]) IsDisplayedAs(selector string, expected any) (bool, error) {
	displayed, err := v.Displayed(selector)
	if err != nil {
		return false, err
	}

	matches := valuesEqual(displayed, expected)

	if isNil(displayed) {
		v.lastError = NotNotifiedMessage
		return matches, nil
	}

	if matches {
		return true, nil
	}

	actual, err := v.Actual(selector)
	if err != nil {
		return false, err
	}

	if valuesEqual(actual, expected) {
		v.lastError = NotNotifiedMessage
	}

	return false, nil
}

// LastError returns the last diagnostic and clears it.
func (v *View[M]) LastError() string {
	msg := v.lastError
	v.lastError = ""

	return msg
}

// Observed returns the names of the fields held by the view, sorted.
func (v *View[M]) Observed() []string {
	names := make([]string, 0, len(v.displayed))
	for name := range v.displayed {
		names = append(names, name)
	}

	return sortedNames(names)
}

// Stale returns the observed fields whose displayed value differs from the
// model's actual value, sorted by field name.
func (v *View[M]) Stale() ([]Staleness, error) {
	var stale []Staleness

	for _, name := range v.Observed() {
		d, err := v.members.field(name)
		if err != nil {
			return nil, err
		}

		actual := v.members.value(d)
		if displayed := v.displayed[name]; !valuesEqual(displayed, actual) {
			stale = append(stale, Staleness{Field: name, Displayed: displayed, Actual: actual})
		}
	}

	sort.Slice(stale, func(i, j int) bool { return stale[i].Field < stale[j].Field })

	return stale, nil
}

// DisplayedAs returns the displayed value of a field as a V.
func DisplayedAs[V any, M Notifier](v *View[M], selector string) (V, error) {
	var zero V

	value, err := v.Displayed(selector)
	if err != nil {
		return zero, err
	}

	return typedValue[V](selector, value)
}

// ActualAs returns the model's current value of a field as a V.
func ActualAs[V any, M Notifier](v *View[M], selector string) (V, error) {
	var zero V

	value, err := v.Actual(selector)
	if err != nil {
		return zero, err
	}

	return typedValue[V](selector, value)
}

// typedValue converts a read value to V. A nil value converts to the zero V
// when V can hold nil.
func typedValue[V any](selector string, value any) (V, error) {
	var zero V

	if value == nil && nillable(reflect.TypeFor[V]()) {
		return zero, nil
	}

	typed, ok := value.(V)
	if !ok {
		name, _ := FieldName(selector)
		return zero, typeMismatchError(name, reflect.TypeFor[V]())
	}

	return typed, nil
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

// FieldOf resolves the field whose address accessor returns, e.g.
//
//	viewmock.FieldOf(view, func(vm *ViewModel) *string { return &vm.Name })
func FieldOf[M Notifier, V any](v *View[M], accessor func(M) *V) (FieldDescriptor, error) {
	return v.members.fieldAt(accessor(v.model))
}

// DisplayedOf returns the displayed value of the field accessor points to.
func DisplayedOf[M Notifier, V any](v *View[M], accessor func(M) *V) (V, error) {
	d, err := FieldOf(v, accessor)
	if err != nil {
		var zero V
		return zero, err
	}

	return DisplayedAs[V](v, d.Name)
}

// ActualOf returns the model's current value of the field accessor points to.
func ActualOf[M Notifier, V any](v *View[M], accessor func(M) *V) (V, error) {
	d, err := FieldOf(v, accessor)
	if err != nil {
		var zero V
		return zero, err
	}

	return ActualAs[V](v, d.Name)
}

// IsDisplayedAsOf is IsDisplayedAs for the field accessor points to.
func IsDisplayedAsOf[M Notifier, V any](v *View[M], accessor func(M) *V, expected V) (bool, error) {
	d, err := FieldOf(v, accessor)
	if err != nil {
		return false, err
	}

	return v.IsDisplayedAs(d.Name, expected)
}
