// Package views HTML şablonlarını binary içine gömer.
package views

import "embed"

//go:embed layouts errors templates
var FS embed.FS
