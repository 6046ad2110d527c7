// Package query flattens parameter bags into form-encoded query strings.
//
// Nested values use bracket notation: slices become key[0]=a&key[1]=b and
// maps become key[sub]=v, recursively. Nil values are skipped and booleans
// are written as 1 or 0.
package query

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Pair is one flattened key/value.
type Pair struct {
	Key   string
	Value string
}

// Flatten turns params into an ordered list of pairs. Top-level and map
// keys are sorted; slice elements keep their index order.
func Flatten(params map[string]any) []Pair {
	var out []Pair
	for _, k := range sortedKeys(params) {
		out = appendValue(out, k, params[k])
	}
	return out
}

// Encode returns the application/x-www-form-urlencoded form of params.
func Encode(params map[string]any) string {
	pairs := Flatten(params)
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

func appendValue(out []Pair, key string, v any) []Pair {
	switch val := v.(type) {
	case nil:
		return out
	case string:
		return append(out, Pair{key, val})
	case bool:
		if val {
			return append(out, Pair{key, "1"})
		}
		return append(out, Pair{key, "0"})
	case int:
		return append(out, Pair{key, strconv.Itoa(val)})
	case int64:
		return append(out, Pair{key, strconv.FormatInt(val, 10)})
	case float64:
		return append(out, Pair{key, strconv.FormatFloat(val, 'f', -1, 64)})
	case float32:
		return append(out, Pair{key, strconv.FormatFloat(float64(val), 'f', -1, 32)})
	case fmt.Stringer:
		return append(out, Pair{key, val.String()})
	case map[string]any:
		for _, k := range sortedKeys(val) {
			out = appendValue(out, key+"["+k+"]", val[k])
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return out
		}
		return appendValue(out, key, rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			out = appendValue(out, key+"["+strconv.Itoa(i)+"]", rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		keys := make([]string, 0, rv.Len())
		byKey := make(map[string]reflect.Value, rv.Len())
		for _, mk := range rv.MapKeys() {
			s := fmt.Sprint(mk.Interface())
			keys = append(keys, s)
			byKey[s] = rv.MapIndex(mk)
		}
		sort.Strings(keys)
		for _, k := range keys {
			out = appendValue(out, key+"["+k+"]", byKey[k].Interface())
		}
		return out
	default:
		return append(out, Pair{key, fmt.Sprint(v)})
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
