// Package web holds the embedded status page template.
package web

import "embed"

//go:embed index.html.tmpl
var Templates embed.FS
