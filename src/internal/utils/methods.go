package utils

import (
	"fmt"
	"reflect"

	"github.com/maksimkurb/engutil/src/internal/errors"
)

// HasMethod reports whether the dynamic type of obj declares a method called name.
// Both value and pointer receiver methods are considered. Only exported methods
// are visible to reflection. A nil obj, or a nil pointer, is an error.
func HasMethod(obj any, name string) (bool, error) {
	m, err := FindMethod(obj, name)
	if err != nil {
		return false, err
	}
	return m != nil, nil
}

// TypeHasMethod reports whether t declares a method called name. A nil type has no methods.
func TypeHasMethod(t reflect.Type, name string) bool {
	_, ok := FindTypeMethod(t, name)
	return ok
}

// FindMethod returns the method called name on the dynamic type of obj, or nil
// if there is none.
func FindMethod(obj any, name string) (*reflect.Method, error) {
	if isNilObject(obj) {
		return nil, errors.NewNilObjectError(fmt.Sprintf("find method %q", name))
	}
	m, ok := FindTypeMethod(reflect.TypeOf(obj), name)
	if !ok {
		return nil, nil
	}
	return &m, nil
}

// FindTypeMethod looks up name in the method set of t, falling back to the
// method set of *t for non-pointer types.
func FindTypeMethod(t reflect.Type, name string) (reflect.Method, bool) {
	if t == nil {
		return reflect.Method{}, false
	}
	if m, ok := t.MethodByName(name); ok {
		return m, true
	}
	if t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface {
		return reflect.PointerTo(t).MethodByName(name)
	}
	return reflect.Method{}, false
}

func isNilObject(obj any) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// CapabilityTable records which methods a named type supports. It lets callers
// declare capabilities up front instead of probing with reflection. It is not
// safe for concurrent registration.
type CapabilityTable struct {
	types map[string]map[string]struct{}
}

// NewCapabilityTable creates an empty table.
func NewCapabilityTable() *CapabilityTable {
	return &CapabilityTable{types: make(map[string]map[string]struct{})}
}

// Register declares that typeName supports methods.
func (c *CapabilityTable) Register(typeName string, methods ...string) {
	set, ok := c.types[typeName]
	if !ok {
		set = make(map[string]struct{}, len(methods))
		c.types[typeName] = set
	}
	for _, m := range methods {
		set[m] = struct{}{}
	}
}

// RegisterType registers every exported method of the dynamic type of v,
// including pointer receiver methods, under TypeName(v).
func (c *CapabilityTable) RegisterType(v any) {
	t := reflect.TypeOf(v)
	if t == nil {
		return
	}
	if t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface {
		t = reflect.PointerTo(t)
	}
	methods := make([]string, 0, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		methods = append(methods, t.Method(i).Name)
	}
	c.Register(TypeName(v), methods...)
}

// Has reports whether typeName was registered with method.
func (c *CapabilityTable) Has(typeName, method string) bool {
	_, ok := c.types[typeName][method]
	return ok
}

// Supports is Has keyed by the dynamic type of v.
func (c *CapabilityTable) Supports(v any, method string) bool {
	return c.Has(TypeName(v), method)
}

// TypeName returns the name used to key v in a CapabilityTable. Pointer and
// value forms of a type share a name.
func TypeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "<nil>"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}
