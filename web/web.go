// Package web embeds the server-rendered templates for the ImageProcessing index view.
package web

import (
	"embed"
	"io/fs"

	pkgweb "github.com/JaimeStill/image-processing/pkg/web"
)

//go:embed templates
var templateFS embed.FS

// Layout is the layout every view renders through.
const Layout = "app.html"

// IndexView is the template rendered by GET /ImageProcessing.
const IndexView = "index.html"

var views = []pkgweb.ViewDef{
	{Template: IndexView, Title: "Image Processing"},
}

// Templates parses the embedded layouts and views for the given base path.
func Templates(basePath string) (*pkgweb.TemplateSet, error) {
	layouts, err := fs.Sub(templateFS, "templates/layouts")
	if err != nil {
		return nil, err
	}

	pages, err := fs.Sub(templateFS, "templates/views")
	if err != nil {
		return nil, err
	}

	return pkgweb.NewTemplateSet(layouts, pages, "*.html", basePath, views)
}
