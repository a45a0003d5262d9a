package viewmock

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrUnknownField is returned when a name does not match a declared field.
	ErrUnknownField = errors.New("unknown field")
	// ErrUnsupportedExpression is returned for selectors that are not a plain field read.
	ErrUnsupportedExpression = errors.New("expression not supported")
	// ErrDynamicComponent is returned for indexed selectors such as vm.Items["key"].
	ErrDynamicComponent = errors.New("dynamic component access is not supported")
	// ErrNotAMethodExpression is returned when a method selector is not a zero-argument call.
	ErrNotAMethodExpression = errors.New("expression does not invoke method")
	// ErrUnknownMethod is returned when a method selector names no method of the model.
	ErrUnknownMethod = errors.New("unknown method")
	// ErrUnknownNotifiedField is returned to the notifier when a model announces
	// a change of a field it does not declare.
	ErrUnknownNotifiedField = errors.New("notified field does not exist")
	// ErrFieldNotObserved is returned when reading a field that was never snapshotted.
	ErrFieldNotObserved = errors.New("field not observed")
	// ErrTypeMismatch is returned by typed reads when the cached value has another type.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrNotObservable is returned when a model cannot be introspected.
	ErrNotObservable = errors.New("model is not observable")
)

// NotNotifiedMessage is reported by LastError when the model holds the
// expected value but the view never received the change.
const NotNotifiedMessage = "The viewModel is correct but the view was never notified with NotifyPropertyChanged."

// FieldError carries the field name and a human readable message for the
// read-side failures whose wording tests may assert on.
type FieldError struct {
	Field string
	Msg   string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Msg
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func notObservedError(name string) error {
	return &FieldError{
		Field: name,
		Msg: fmt.Sprintf("The property %s is not being observed in this test. "+
			"To Observe a specific property use ViewMock.ObservePartial().WithProperty(<propertyName>)", name),
		Err: ErrFieldNotObserved,
	}
}

func typeMismatchError(name string, want reflect.Type) error {
	return &FieldError{
		Field: name,
		Msg:   fmt.Sprintf("The property %s is not of specified type: %s", name, want),
		Err:   ErrTypeMismatch,
	}
}

func unknownNotifiedError(name string) error {
	return &FieldError{
		Field: name,
		Msg:   fmt.Sprintf("Property of name %s does not exist", name),
		Err:   ErrUnknownNotifiedField,
	}
}
