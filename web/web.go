// Package web embeds the dashboard page, its include fragments and the card template.
package web

import "embed"

//go:embed index.html includes
var FS embed.FS
