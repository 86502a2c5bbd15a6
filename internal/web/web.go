// Package web serves the embedded single-page notes UI.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var files embed.FS

// Static returns the embedded asset tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		// static/ is embedded at build time; Sub only fails on an invalid path.
		panic(err)
	}
	return sub
}

// Index serves index.html.
func Index() http.Handler {
	assets := Static()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, assets, "index.html")
	})
}

// Assets serves everything under /static/.
func Assets() http.Handler {
	return http.StripPrefix("/static/", http.FileServer(http.FS(Static())))
}
