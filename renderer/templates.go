package renderer

import "embed"

// templates holds the markdown templates. A file named <assembly>_<part>.md is a
// partial of <assembly>.md.
//
//go:embed *.md
var templates embed.FS

//go:embed page.html
var pageHTML string
