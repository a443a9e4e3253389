// Package assets embeds the files served under /static/.
package assets

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var static embed.FS

// FS returns the embedded static tree rooted at static/.
func FS() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		// static/ is part of the binary; fs.Sub only fails on an invalid path.
		panic(err)
	}
	return sub
}

// Handler serves the embedded files. Mount it with http.StripPrefix.
func Handler() http.Handler {
	return http.FileServer(http.FS(FS()))
}
