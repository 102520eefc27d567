// Package legacy rewrites deprecated payload shapes before structural
// validation runs. Every primitive is idempotent: applying it to its
// own output changes nothing. Rules rename and retype known legacy
// shapes only, they never invent missing data (EnsureDefault is
// reserved for fields the original payloads were allowed to omit).
package legacy

import "strings"

// Rename moves m[from] to m[to] when from is present and to is absent.
func Rename(m map[string]any, from, to string) {
	if _, hasNew := m[to]; hasNew {
		return
	}
	if v, hasOld := m[from]; hasOld {
		m[to] = v
		delete(m, from)
	}
}

// ApplyRenames consults an explicit old-name to new-name table.
func ApplyRenames(m map[string]any, table map[string]string) {
	for from, to := range table {
		Rename(m, from, to)
	}
}

// RenamePrefix rewrites every key starting with old so it starts with
// new instead, keeping existing keys under the new spelling untouched.
func RenamePrefix(m map[string]any, old, new string) {
	for k := range m {
		if rest, found := strings.CutPrefix(k, old); found {
			Rename(m, k, new+rest)
		}
	}
}

// WrapString replaces a bare string at m[key] with {wrapKey: s}.
func WrapString(m map[string]any, key, wrapKey string) {
	if s, ok := m[key].(string); ok {
		m[key] = map[string]any{wrapKey: s}
	}
}

// WrapStrings applies WrapString to every key of m.
func WrapStrings(m map[string]any, wrapKey string) {
	for k := range m {
		WrapString(m, k, wrapKey)
	}
}

// EnsureDefault sets m[key] when it is absent or explicitly null.
func EnsureDefault(m map[string]any, key string, value any) {
	if v, ok := m[key]; !ok || v == nil {
		m[key] = value
	}
}

// Section returns the nested object at m[key] when it is one.
func Section(m map[string]any, key string) (map[string]any, bool) {
	sub, ok := m[key].(map[string]any)
	return sub, ok
}
