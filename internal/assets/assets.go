package assets

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates holds the page templates, rooted at internal/assets/templates.
var Templates fs.FS

// Static holds the stylesheet and scripts served under /static/.
// Generated mascot images are not embedded; they live in the on-disk
// static directory written by mascotgen.
var Static fs.FS

func init() {
	// Embed paths include the leading directory; strip it for serving.
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err)
	}
	Templates = sub

	sub, err = fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	Static = sub
}
