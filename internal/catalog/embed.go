// Package catalog provides the embedded room, tile and palette catalog used
// to configure maze generation and rendering.
package catalog

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
