// Package assets embeds the compiled single-page application.
package assets

import _ "embed"

// Index is the compiled UI, assembled from index.html.tpl, style.css and
// script.js by the minify command.
//
//go:embed index.html
var Index []byte

// Favicon is the site icon.
//
//go:embed favicon.svg
var Favicon []byte
