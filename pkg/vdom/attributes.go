package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute. An empty id is dropped.
func ID(id string) Attr {
	if id == "" {
		return Attr{}
	}
	return attr("id", id)
}

// Class sets the class attribute, joining the non-empty classes with spaces.
func Class(classes ...string) Attr {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return attr("class", strings.Join(parts, " "))
}

// ClassIf returns class when cond is true, "" otherwise. Meant for Class().
func ClassIf(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}

// StyleMap sets the style attribute from a Style.
func StyleMap(style Style) Attr { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("toast-id", "123") → data-toast-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }


// Form and document attributes

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Lang sets the lang attribute.
func Lang(lang string) Attr { return attr("lang", lang) }

// Charset sets the charset attribute.
func Charset(charset string) Attr { return attr("charset", charset) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Content sets the content attribute.
func Content(content string) Attr { return attr("content", content) }

// Src sets the src attribute.
func Src(src string) Attr { return attr("src", src) }

// Dir sets the text direction. An empty direction is not rendered.
func Dir(dir string) Attr { return attr("dir", dir) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", rel) }

// Href sets the href attribute.
func Href(href string) Attr { return attr("href", href) }

// Defer marks a script as deferred.
func Defer(deferred bool) Attr { return attr("defer", deferred) }
