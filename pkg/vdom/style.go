package vdom

import (
	"sort"
	"strings"
)

// Style is a set of CSS declarations keyed by property name.
// Custom properties (--name) are stored like any other property.
type Style map[string]string

// Clone returns a copy of s. A nil Style clones to an empty, non-nil Style.
func (s Style) Clone() Style {
	out := make(Style, len(s)+2)
	for k, v := range s {
		out[k] = v
	}
	return out
}

// With returns a copy of s with property set to value.
func (s Style) With(property, value string) Style {
	out := s.Clone()
	out[property] = value
	return out
}

// Merge returns a copy of s overlaid with the declarations of other.
func (s Style) Merge(other Style) Style {
	out := s.Clone()
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Get returns the value of property, or "".
func (s Style) Get(property string) string {
	return s[property]
}

// String renders the declarations in property order, e.g. "--len: 2; color: red".
func (s Style) String() string {
	if len(s) == 0 {
		return ""
	}
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(s[k])
	}
	return b.String()
}
