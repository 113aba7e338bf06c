package render

import (
	"regexp"
	"strings"
	"testing"

	"github.com/vango-dev/toastify/pkg/vdom"
)

// attrValue returns the raw, still escaped, value of the first name="..."
// attribute in html.
func attrValue(t *testing.T, html, name string) string {
	t.Helper()
	m := regexp.MustCompile(`\s` + regexp.QuoteMeta(name) + `="([^"]*)"`).FindStringSubmatch(html)
	if m == nil {
		t.Fatalf("no %s attribute in %q", name, html)
	}
	return m[1]
}

func TestRenderText(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("Hello, World!"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "Hello, World!" {
		t.Errorf("got %q, want %q", html, "Hello, World!")
	}
}

func TestRenderTextEscaping(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("<script>alert('xss')</script>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("HTML should be escaped, got %q", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("should contain escaped script tag, got %q", html)
	}
}

func TestRenderElement(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Div(vdom.Class("Toastify"), vdom.ID("main"),
		vdom.Div(vdom.Class("Toastify__toast-body"), vdom.Text("Saved")),
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div class="Toastify" id="main"><div class="Toastify__toast-body">Saved</div></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderStyleMap(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	tests := []struct {
		name  string
		style vdom.Style
		want  string
	}{
		{"empty style omitted", vdom.Style{}, `<div></div>`},
		{"custom properties", vdom.Style{"--nth": "1", "--len": "2"}, `<div style="--len: 2; --nth: 1"></div>`},
		{"pointer events", vdom.Style{"pointer-events": "none"}, `<div style="pointer-events: none"></div>`},
		{"value cannot add declarations", vdom.Style{"color": "red; position: fixed", "--nth": "1"}, `<div style="--nth: 1"></div>`},
		{"property must be an identifier", vdom.Style{"color:red;x": "1", "opacity": "0"}, `<div style="opacity: 0"></div>`},
		{"quotes escaped", vdom.Style{"font-family": `"Fira Sans"`}, `<div style="font-family: &quot;Fira Sans&quot;"></div>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := renderer.RenderToString(vdom.Div(vdom.StyleMap(tt.style)))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if html != tt.want {
				t.Errorf("got %q, want %q", html, tt.want)
			}
		})
	}
}

func TestRenderAttributeValues(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Button(
		vdom.Type("button"),
		vdom.AriaLabel(`say "close"`),
		vdom.AriaHidden(false),
		vdom.Attr{Key: "disabled", Value: true},
		vdom.Attr{Key: "_internal", Value: "x"},
		vdom.Attr{Key: "tabindex", Value: 3},
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := attrValue(t, html, "aria-label"); got != "say &quot;close&quot;" {
		t.Errorf("aria-label = %q", got)
	}
	if got := attrValue(t, html, "aria-hidden"); got != "false" {
		t.Errorf("aria-hidden = %q", got)
	}
	if got := attrValue(t, html, "tabindex"); got != "3" {
		t.Errorf("tabindex = %q", got)
	}
	if !strings.Contains(html, " disabled") || strings.Contains(html, `disabled="`) {
		t.Errorf("disabled should render as boolean attribute, got %q", html)
	}
	if strings.Contains(html, "_internal") {
		t.Errorf("internal props must not render, got %q", html)
	}
}

func TestRenderVoidElement(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Meta(vdom.Charset("utf-8")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<meta charset="utf-8">` {
		t.Errorf("got %q", html)
	}
}

func TestRenderFragmentAndComponent(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	comp := vdom.Func(func() *vdom.VNode { return vdom.Span(vdom.Text("c")) })
	node := vdom.Fragment(vdom.Text("a"), vdom.Raw("<b>b</b>"), comp)

	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "a<b>b</b><span>c</span>" {
		t.Errorf("got %q", html)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	if _, err := renderer.RenderToString(&vdom.VNode{Kind: vdom.VKind(99)}); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestRenderPretty(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true})

	html, err := renderer.RenderToString(vdom.Div(vdom.Div(vdom.Text("x"))))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<div>\n  <div>\nx  </div>\n</div>\n"
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}
