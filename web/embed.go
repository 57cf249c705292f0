// Package web holds the browser UI served by classgrid serve: an upload
// form that posts both documents and shows the per-day result.
package web

import (
	"embed"
	"io/fs"
)

//go:embed all:dist
var assets embed.FS

// DistFS returns the UI assets rooted at dist/, so "index.html" resolves
// directly.
func DistFS() (fs.FS, error) {
	return fs.Sub(assets, "dist")
}
