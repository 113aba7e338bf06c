// Package render converts VNode trees into HTML.
//
// It produces the markup for the toast container fragment pushed to
// browsers over the live connection, and for the full demo page:
//
//   - HTML5 compliant element rendering
//   - Text and attribute escaping
//   - Void and boolean attribute handling
//   - Style maps rendered as sorted CSS declarations
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// # Full Page Rendering
//
//	page := render.PageData{
//	    Body:    bodyNode,
//	    Title:   "Toasts",
//	    Scripts: []render.ScriptTag{{Inline: clientJS}},
//	}
//	err := renderer.RenderPage(w, page)
//
// # Security
//
// All text content is escaped by default. Style declarations whose value
// contains ';', '{' or '}' are dropped. Raw HTML can be inserted using
// KindRaw nodes, but should only be used with trusted content.
package render
