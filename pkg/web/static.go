package web

import (
	"bytes"
	"embed"
	"io/fs"
	"net/http"
	"time"
)

// AssetServer returns a handler that serves files from an embedded filesystem,
// stripping the URL prefix and serving from the given subdirectory.
func AssetServer(fsys embed.FS, subdir, urlPrefix string) http.HandlerFunc {
	sub, err := fs.Sub(fsys, subdir)
	if err != nil {
		panic("failed to create sub-filesystem: " + err.Error())
	}
	server := http.StripPrefix(urlPrefix, http.FileServer(http.FS(sub)))
	return server.ServeHTTP
}

// AssetFile returns a handler that serves a single file from an embedded
// filesystem.
func AssetFile(fsys embed.FS, path, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fsys.ReadFile(path)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeContent(w, r, name, time.Time{}, bytes.NewReader(data))
	}
}
