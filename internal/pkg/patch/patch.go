package patch

import "reflect"

// Empty reports whether every field of a partial update is an absent pointer.
func Empty(fields ...any) bool {
	for _, f := range fields {
		if f == nil {
			continue
		}
		v := reflect.ValueOf(f)
		if v.Kind() == reflect.Pointer && v.IsNil() {
			continue
		}
		return false
	}
	return true
}
