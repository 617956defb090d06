// Package describe renders values as human readable labels made of their type name and value, e.g.
// "FilePath: /tmp/a.txt".
package describe

import (
	"fmt"
	"reflect"

	"github.com/iancoleman/strcase"
)

const nilValue = "<nil>"

// Describer renders labels.
type Describer struct {
	// Humanize lowercases type names and separates their words, e.g. "file path: /tmp/a.txt".
	Humanize bool
}

// Default is the describer used by Describe.
var Default = Describer{}

// Describe renders a value with the default describer.
func Describe(v any) string {
	return Default.Describe(v)
}

// Describe renders a value's type name followed by its value. Pointers are dereferenced.
func (d Describer) Describe(v any) string {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return d.label(rv.Type().Elem(), nilValue)
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nilValue
	}
	var value string
	if s, ok := rv.Interface().(fmt.Stringer); ok {
		value = s.String()
	} else {
		value = fmt.Sprint(rv.Interface())
	}
	return d.label(rv.Type(), value)
}

// TypeName returns the name used to label values of the given type.
func (d Describer) TypeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if name == "" {
		name = t.String()
	}
	if d.Humanize {
		return strcase.ToDelimited(name, ' ')
	}
	return name
}

func (d Describer) label(t reflect.Type, value string) string {
	return d.TypeName(t) + ": " + value
}
