package scopehint

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ResolveLabel maps a raw configuration value onto the display label of the
// matching field option. Multiselect values are split on commas and each
// part resolved on its own. Unmatched values are returned trimmed.
func ResolveLabel(field *Field, raw string) string {
	raw = strings.TrimSpace(raw)
	if !field.HasOptions() {
		return raw
	}
	if field.Type == InputTypeMultiselect && strings.Contains(raw, ",") {
		parts := strings.Split(raw, ",")
		labels := make([]string, len(parts))
		for i, part := range parts {
			labels[i] = ResolveLabel(field, part)
		}
		return strings.Join(labels, ", ")
	}
	for _, option := range field.Options {
		if option.Value == raw {
			return option.Label
		}
	}
	return raw
}

// isComposite reports whether value is a structured value that cannot be
// compared or displayed as a single line.
func isComposite(value any) bool {
	if value == nil {
		return false
	}
	if _, ok := value.([]byte); ok {
		return false
	}
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		_, stringer := value.(fmt.Stringer)
		return !(rv.Kind() == reflect.Struct && stringer)
	default:
		return false
	}
}

// stringify coerces a scalar configuration value to text. Booleans follow
// the host convention of "1" and "".
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		if v {
			return "1"
		}
		return ""
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case fmt.Stringer:
		return v.String()
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		return stringify(rv.Elem().Interface())
	}
	return fmt.Sprint(value)
}
