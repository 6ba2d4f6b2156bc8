package pagesite

import (
	"fmt"
	"reflect"
)

// argRegistry holds the values passed to MountPages, keyed by their dynamic type.
// Component methods receive them by declaring a parameter of a matching type.
type argRegistry map[reflect.Type]reflect.Value

func (args argRegistry) addArg(v any) error {
	if v == nil {
		return nil
	}
	typ := reflect.TypeOf(v)
	if _, ok := args[typ]; ok {
		return fmt.Errorf("duplicate type %s in args registry", typ)
	}
	args[typ] = reflect.ValueOf(v)
	return nil
}

// getArg looks up a value assignable to pt. A stored *T satisfies a T parameter
// and a stored addressable T satisfies a *T parameter.
func (args argRegistry) getArg(pt reflect.Type) (reflect.Value, bool) {
	if v, ok := args[pt]; ok {
		return v, true
	}
	if pt.Kind() != reflect.Ptr {
		if v, ok := args[reflect.PointerTo(pt)]; ok {
			return v.Elem(), true
		}
	} else if v, ok := args[pt.Elem()]; ok && v.CanAddr() {
		return v.Addr(), true
	}

	// interfaces
	for t, v := range args {
		if pt.Kind() == reflect.Interface && t.AssignableTo(pt) {
			return v, true
		}
	}
	return reflect.Value{}, false
}
