package scaffold

import (
	"fmt"
	"regexp"
	"strconv"
	"sync"
)

// Variables maps template variable names to scalar values (string, number
// or boolean). A Variables value is treated as immutable for the duration
// of a tree walk: callers needing scoped overrides build a derived map
// with Merge instead of mutating in place.
type Variables map[string]any

// Merge returns a new map holding the receiver's entries with overrides
// applied on top. Neither input is modified.
func (v Variables) Merge(overrides Variables) Variables {
	merged := make(Variables, len(v)+len(overrides))
	for key, value := range v {
		merged[key] = value
	}
	for key, value := range overrides {
		merged[key] = value
	}
	return merged
}

// StringValue renders the value bound to key as a string. Booleans and
// numbers use their canonical forms; a missing key returns "".
func (v Variables) StringValue(key string) string {
	value, ok := v[key]
	if !ok {
		return ""
	}
	switch t := value.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}

var (
	tokenPatternMu    sync.Mutex
	tokenPatternCache = map[string]*regexp.Regexp{}
)

func tokenPattern(key string) *regexp.Regexp {
	tokenPatternMu.Lock()
	defer tokenPatternMu.Unlock()
	if re, ok := tokenPatternCache[key]; ok {
		return re
	}
	re := regexp.MustCompile(`\{\{\s*` + regexp.QuoteMeta(key) + `\s*\}\}`)
	tokenPatternCache[key] = re
	return re
}

// Substitute replaces every {{ key }} token bound to a known variable with
// that variable's string form. Tokens referencing unknown keys are left
// verbatim so chained template stages can substitute in passes.
func Substitute(content string, vars Variables) string {
	for key := range vars {
		content = tokenPattern(key).ReplaceAllString(content, vars.StringValue(key))
	}
	return content
}
