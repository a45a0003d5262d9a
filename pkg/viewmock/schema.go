package viewmock

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// tagName is the struct tag used to rename (`viewmock:"Alias"`) or hide
// (`viewmock:"-"`) a field.
const tagName = "viewmock"

// FieldDescriptor identifies one declared field of a model type.
type FieldDescriptor struct {
	// Name is the name used for lookups and cache keys.
	Name string
	// Type is the static type of the field. For dynamic models it is the
	// type of the value held when the descriptor was resolved.
	Type reflect.Type
	// Owner is the model type declaring the field.
	Owner reflect.Type
	// Index is the reflect index path of a struct field, nil for dynamic models.
	Index []int
}

// valueOf reads the field from a struct value. Fields behind a nil embedded
// pointer read as nil.
func (d FieldDescriptor) valueOf(v reflect.Value) any {
	fv, err := v.FieldByIndexErr(d.Index)
	if err != nil {
		return nil
	}

	return fv.Interface()
}

// Get reads the field from model, a pointer to the owner struct or a
// FieldSource.
func (d FieldDescriptor) Get(model any) (any, error) {
	if src, ok := model.(FieldSource); ok && d.Index == nil {
		v, found := src.FieldValue(d.Name)
		if !found {
			return nil, fmt.Errorf("%w: %T has no field %q", ErrUnknownField, model, d.Name)
		}

		return v, nil
	}

	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Pointer && !v.IsNil() {
		v = v.Elem()
	}

	if !v.IsValid() || v.Type() != d.Owner {
		return nil, fmt.Errorf("%w: field %s belongs to %s, not %T", ErrUnknownField, d.Name, d.Owner, model)
	}

	return d.valueOf(v), nil
}

// MethodDescriptor identifies a method of a model type.
type MethodDescriptor struct {
	Name   string
	Owner  reflect.Type
	Method reflect.Method
}

// Invoke calls the method on model and returns its results. The method must
// not take arguments.
func (d MethodDescriptor) Invoke(model any) ([]any, error) {
	mv := reflect.ValueOf(model).MethodByName(d.Name)
	if !mv.IsValid() {
		return nil, fmt.Errorf("%w: %s on %T", ErrUnknownMethod, d.Name, model)
	}

	if mv.Type().NumIn() != 0 {
		return nil, fmt.Errorf("%w: %s takes arguments", ErrNotAMethodExpression, d.Name)
	}

	out := mv.Call(nil)
	results := make([]any, 0, len(out))

	for _, o := range out {
		results = append(results, o.Interface())
	}

	return results, nil
}

// Schema is the field registry of a struct model type. It is built once per
// type and shared.
type Schema struct {
	typ    reflect.Type
	fields []FieldDescriptor
	byName map[string]int
}

var schemas sync.Map // reflect.Type -> *Schema

// SchemaOf returns the schema of a struct type or a pointer to one.
func SchemaOf(t reflect.Type) (*Schema, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil type", ErrNotObservable)
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if cached, ok := schemas.Load(t); ok {
		return cached.(*Schema), nil
	}

	schema, err := buildSchema(t)
	if err != nil {
		return nil, err
	}

	actual, _ := schemas.LoadOrStore(t, schema)

	return actual.(*Schema), nil
}

func buildSchema(t reflect.Type) (*Schema, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct", ErrNotObservable, t)
	}

	schema := &Schema{
		typ:    t,
		byName: make(map[string]int),
	}

	for _, f := range reflect.VisibleFields(t) {
		if f.Anonymous || !f.IsExported() || !reachable(t, f.Index) {
			continue
		}

		name := f.Name

		switch tag := f.Tag.Get(tagName); tag {
		case "-":
			continue
		case "":
		default:
			name = tag
		}

		if _, dup := schema.byName[name]; dup {
			return nil, fmt.Errorf("%w: %s declares field %q twice", ErrNotObservable, t, name)
		}

		schema.byName[name] = len(schema.fields)
		schema.fields = append(schema.fields, FieldDescriptor{
			Name:  name,
			Type:  f.Type,
			Owner: t,
			Index: f.Index,
		})
	}

	return schema, nil
}

// reachable reports whether every struct on the index path is exported, so
// the promoted field can be read through reflection.
func reachable(t reflect.Type, index []int) bool {
	for i := 1; i < len(index); i++ {
		if !t.FieldByIndex(index[:i]).IsExported() {
			return false
		}
	}

	return true
}

// Type returns the struct type the schema describes.
func (s *Schema) Type() reflect.Type {
	return s.typ
}

// Fields returns the declared fields in declaration order.
func (s *Schema) Fields() []FieldDescriptor {
	out := make([]FieldDescriptor, len(s.fields))
	copy(out, s.fields)

	return out
}

// Names returns the declared field names in declaration order.
func (s *Schema) Names() []string {
	names := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		names = append(names, f.Name)
	}

	return names
}

// Field looks up a declared field by name.
func (s *Schema) Field(name string) (FieldDescriptor, error) {
	i, ok := s.byName[name]
	if !ok {
		return FieldDescriptor{}, fmt.Errorf("%w: %s has no field %q", ErrUnknownField, s.typ, name)
	}

	return s.fields[i], nil
}

// Resolve looks up the field a name or expression selector reads.
func (s *Schema) Resolve(selector string) (FieldDescriptor, error) {
	name, err := FieldName(selector)
	if err != nil {
		return FieldDescriptor{}, err
	}

	return s.Field(name)
}

// FieldAt resolves a field from its address. model must be a pointer to a
// value of the schema type and ptr the address of one of its fields.
func (s *Schema) FieldAt(model any, ptr any) (FieldDescriptor, error) {
	mv := reflect.ValueOf(model)
	if mv.Kind() != reflect.Pointer || mv.IsNil() || mv.Elem().Type() != s.typ {
		return FieldDescriptor{}, fmt.Errorf("%w: %T is not a *%s", ErrNotObservable, model, s.typ)
	}

	pv := reflect.ValueOf(ptr)
	if pv.Kind() != reflect.Pointer || pv.IsNil() {
		return FieldDescriptor{}, fmt.Errorf("%w: accessor must return the address of a field, got %T", ErrUnsupportedExpression, ptr)
	}

	sv := mv.Elem()
	addr := pv.Pointer()
	target := pv.Type().Elem()

	var matches []FieldDescriptor

	for _, d := range s.fields {
		fv, err := sv.FieldByIndexErr(d.Index)
		if err != nil {
			continue
		}

		if fv.UnsafeAddr() == addr && fv.Type() == target {
			matches = append(matches, d)
		}
	}

	switch len(matches) {
	case 0:
		return FieldDescriptor{}, fmt.Errorf("%w: accessor does not return the address of a field of %s", ErrUnsupportedExpression, s.typ)
	case 1:
		return matches[0], nil
	default:
		// Zero-size fields can share an address.
		names := make([]string, 0, len(matches))
		for _, d := range matches {
			names = append(names, d.Name)
		}

		return FieldDescriptor{}, fmt.Errorf("%w: address is shared by fields %v of %s", ErrUnsupportedExpression, names, s.typ)
	}
}

// Method resolves a zero-argument call selector such as "vm.Refresh()".
func (s *Schema) Method(selector string) (MethodDescriptor, error) {
	return methodOf(reflect.PointerTo(s.typ), selector)
}

func methodOf(t reflect.Type, selector string) (MethodDescriptor, error) {
	name, err := MethodName(selector)
	if err != nil {
		return MethodDescriptor{}, err
	}

	method, ok := t.MethodByName(name)
	if !ok {
		return MethodDescriptor{}, fmt.Errorf("%w: %s has no method %q", ErrUnknownMethod, t, name)
	}

	return MethodDescriptor{Name: name, Owner: t, Method: method}, nil
}

func sortedNames(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	sort.Strings(out)

	return out
}
