package viewmock

import (
	"fmt"
	"reflect"
)

// members gives a view uniform access to the fields of struct models and
// FieldSource models.
type members interface {
	names() []string
	field(name string) (FieldDescriptor, error)
	resolve(selector string) (FieldDescriptor, error)
	fieldAt(ptr any) (FieldDescriptor, error)
	method(selector string) (MethodDescriptor, error)
	value(d FieldDescriptor) any
}

func membersOf(model any) (members, error) {
	if isNil(model) {
		return nil, fmt.Errorf("%w: nil model", ErrNotObservable)
	}

	if src, ok := model.(FieldSource); ok {
		return &sourceMembers{src: src, typ: reflect.TypeOf(model)}, nil
	}

	mv := reflect.ValueOf(model)
	if mv.Kind() != reflect.Pointer {
		return nil, fmt.Errorf("%w: %T must be a non-nil pointer to a struct", ErrNotObservable, model)
	}

	schema, err := SchemaOf(mv.Type())
	if err != nil {
		return nil, err
	}

	return &structMembers{schema: schema, model: model, elem: mv.Elem()}, nil
}

type structMembers struct {
	schema *Schema
	model  any
	elem   reflect.Value
}

func (s *structMembers) names() []string {
	return s.schema.Names()
}

func (s *structMembers) field(name string) (FieldDescriptor, error) {
	return s.schema.Field(name)
}

func (s *structMembers) resolve(selector string) (FieldDescriptor, error) {
	return s.schema.Resolve(selector)
}

func (s *structMembers) fieldAt(ptr any) (FieldDescriptor, error) {
	return s.schema.FieldAt(s.model, ptr)
}

func (s *structMembers) method(selector string) (MethodDescriptor, error) {
	return s.schema.Method(selector)
}

func (s *structMembers) value(d FieldDescriptor) any {
	return d.valueOf(s.elem)
}

type sourceMembers struct {
	src FieldSource
	typ reflect.Type
}

func (s *sourceMembers) names() []string {
	return s.src.FieldNames()
}

func (s *sourceMembers) field(name string) (FieldDescriptor, error) {
	v, ok := s.src.FieldValue(name)
	if !ok {
		return FieldDescriptor{}, fmt.Errorf("%w: %s has no field %q", ErrUnknownField, s.typ, name)
	}

	return FieldDescriptor{Name: name, Type: reflect.TypeOf(v), Owner: s.typ}, nil
}

func (s *sourceMembers) resolve(selector string) (FieldDescriptor, error) {
	name, err := FieldName(selector)
	if err != nil {
		return FieldDescriptor{}, err
	}

	return s.field(name)
}

func (s *sourceMembers) fieldAt(any) (FieldDescriptor, error) {
	return FieldDescriptor{}, fmt.Errorf("%w: %w: fields of %s have no address", ErrUnsupportedExpression, ErrDynamicComponent, s.typ)
}

func (s *sourceMembers) method(selector string) (MethodDescriptor, error) {
	return methodOf(s.typ, selector)
}

func (s *sourceMembers) value(d FieldDescriptor) any {
	v, _ := s.src.FieldValue(d.Name)
	return v
}
