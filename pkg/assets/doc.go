// Package assets serves fingerprinted static files.
//
// A Bundle holds in-memory files and serves each one under a content-hashed
// name so browsers can cache it forever:
//
//	bundle := assets.NewBundle("/assets/", map[string][]byte{
//		"toastify.js":  []byte(script),
//		"toastify.css": []byte(styles),
//	})
//	bundle.Asset("toastify.js") // "/assets/toastify.3f2a9c1d.js"
//
// The plain name is still served, with revalidation headers, for clients
// that hard-code it.
package assets
