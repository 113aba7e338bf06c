package render

import (
	"io"

	"github.com/vango-dev/toastify/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content.
	Body *vdom.VNode

	// Title is the page title.
	Title string

	// Styles contains inline CSS blocks.
	Styles []string

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string

	// Scripts are emitted at the end of the body.
	Scripts []ScriptTag

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// Dir is the text direction attribute for the html element ("rtl" or "").
	Dir string
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string // src attribute
	Defer  bool   // defer attribute
	Module bool   // type="module"
	Inline string // inline script content
}

// RenderPage renders a complete HTML document to the given writer.
// The document is built as a VNode tree, so head and body go through the
// same escaping as any other markup.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	doc := vdom.Html(
		vdom.Lang(lang),
		vdom.Dir(page.Dir),
		pageHead(page),
		vdom.Body(page.Body, vdom.Range(page.Scripts, scriptElement)),
	)
	if err := r.RenderToWriter(w, doc); err != nil {
		return err
	}
	if r.config.Pretty {
		return nil
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func pageHead(page PageData) *vdom.VNode {
	return vdom.Head(
		vdom.Meta(vdom.Charset("utf-8")),
		vdom.Meta(vdom.Name("viewport"), vdom.Content("width=device-width, initial-scale=1")),
		vdom.If(page.Title != "", vdom.Title(vdom.Text(page.Title))),
		vdom.Range(page.StyleSheets, func(href string, _ int) *vdom.VNode {
			return vdom.Link(vdom.Rel("stylesheet"), vdom.Href(href))
		}),
		vdom.Range(page.Styles, func(css string, _ int) *vdom.VNode {
			return vdom.Style_(vdom.Raw(css))
		}),
	)
}

func scriptElement(s ScriptTag, _ int) *vdom.VNode {
	typ := ""
	if s.Module {
		typ = "module"
	}
	return vdom.Script(
		vdom.Src(s.Src),
		vdom.Type(typ),
		vdom.Defer(s.Defer),
		vdom.Raw(s.Inline),
	)
}
