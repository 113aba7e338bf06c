package assets

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"
)

// Resolver resolves a source asset name to its URL path.
type Resolver interface {
	Asset(source string) string
}

type file struct {
	data        []byte
	contentType string
	etag        string
}

// Bundle serves a fixed set of in-memory files under fingerprinted names.
type Bundle struct {
	prefix   string
	manifest *Manifest
	files    map[string]file // keyed by served name
	modTime  time.Time
}

// NewBundle fingerprints files and mounts them under prefix. The prefix
// should start and end with "/".
func NewBundle(prefix string, files map[string][]byte) *Bundle {
	b := &Bundle{
		prefix:   prefix,
		manifest: NewManifest(),
		files:    make(map[string]file, 2*len(files)),
		modTime:  time.Now(),
	}
	for name, data := range files {
		sum := sha256.Sum256(data)
		hash := hex.EncodeToString(sum[:])[:8]
		ct := mime.TypeByExtension(path.Ext(name))
		if ct == "" {
			ct = "application/octet-stream"
		}

		f := file{data: data, contentType: ct, etag: `"` + hash + `"`}
		fingerprinted := Fingerprint(name, hash)
		b.files[name] = f
		b.files[fingerprinted] = f
		b.manifest.Set(name, fingerprinted)
	}
	return b
}

// Fingerprint inserts hash before the extension of name:
// app.js becomes app.<hash>.js.
func Fingerprint(name, hash string) string {
	ext := path.Ext(name)
	return strings.TrimSuffix(name, ext) + "." + hash + ext
}

// Asset implements Resolver.
func (b *Bundle) Asset(source string) string {
	return b.prefix + b.manifest.Resolve(source)
}

// Manifest returns the source to fingerprinted name mapping.
func (b *Bundle) Manifest() *Manifest {
	return b.manifest
}

// ServeHTTP serves a bundle file. Mount it with the prefix stripped.
// Fingerprinted names are immutable; plain names must be revalidated.
func (b *Bundle) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/")
	f, ok := b.files[name]
	if !ok {
		http.NotFound(w, r)
		return
	}

	if b.manifest.Has(name) {
		w.Header().Set("Cache-Control", "no-cache")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	}
	w.Header().Set("Content-Type", f.contentType)
	w.Header().Set("ETag", f.etag)
	http.ServeContent(w, r, name, b.modTime, bytes.NewReader(f.data))
}
