// Package strutil holds the small text helpers shared by the assertion service,
// the logging sink and the accessor text operators.
package strutil

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Stringify concatenates the text form of every part without separators.
func Stringify(parts ...any) string {
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(ToString(p))
	}
	return sb.String()
}

// ToString converts a value to its text form.
// Numbers go through strconv, everything else through fmt.
func ToString(v any) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return x
	case []byte:
		return string(x)
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case error:
		if nilPointer(x) {
			return "<nil>"
		}
		return x.Error()
	case fmt.Stringer:
		if nilPointer(x) {
			return "<nil>"
		}
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}

// nilPointer reports whether v holds a typed nil pointer.
func nilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// BeginsWith reports whether scanned starts with match.
func BeginsWith(match, scanned string) bool {
	return strings.HasPrefix(scanned, match)
}

// EndsWith reports whether scanned ends with match.
func EndsWith(match, scanned string) bool {
	return strings.HasSuffix(scanned, match)
}

// Contains reports whether scanned contains match.
func Contains(match, scanned string) bool {
	return strings.Contains(scanned, match)
}

// PathOf returns the directory part of fileName including the trailing
// separator, or "" when fileName has none. Both '/' and '\' count.
func PathOf(fileName string) string {
	if i := strings.LastIndexAny(fileName, `/\`); i >= 0 {
		return fileName[:i+1]
	}
	return ""
}
