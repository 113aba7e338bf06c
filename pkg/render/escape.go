package render

import (
	"io"
	"strings"

	"github.com/vango-dev/toastify/pkg/vdom"
)

// escapeContext selects the escaping rules for a piece of output.
type escapeContext int

const (
	inText escapeContext = iota
	inAttr
)

var escapers = [...]*strings.Replacer{
	inText: strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	),
	// Attribute values also keep their whitespace as character
	// references so the parser does not fold it.
	inAttr: strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
		"\n", "&#10;",
		"\r", "&#13;",
		"\t", "&#9;",
	),
}

// writeEscaped streams s to w escaped for ctx.
func writeEscaped(w io.Writer, ctx escapeContext, s string) error {
	_, err := escapers[ctx].WriteString(w, s)
	return err
}

// writeAttr writes ` key="value"` with value escaped.
func writeAttr(w io.Writer, key, value string) error {
	if _, err := io.WriteString(w, " "+key+`="`); err != nil {
		return err
	}
	if err := writeEscaped(w, inAttr, value); err != nil {
		return err
	}
	_, err := io.WriteString(w, `"`)
	return err
}

// styleValue serializes s for a style attribute. Declarations whose
// property is not a plain identifier, or whose value would end the
// declaration or open a block, are dropped: "red; position: fixed" must
// not become two declarations.
func styleValue(s vdom.Style) string {
	clean := make(vdom.Style, len(s))
	for prop, value := range s {
		if !isCSSProperty(prop) || strings.ContainsAny(value, ";{}") {
			continue
		}
		clean[prop] = value
	}
	return clean.String()
}

func isCSSProperty(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
