package gen

import (
	"embed"
	"path/filepath"
	"text/template"
)

//go:embed template/*.tmpl
var templateDir embed.FS

// TypeTemplate specifies a template that is executed with
// each Context to produce one artifact.
type TypeTemplate struct {
	Name   string                // template name.
	Format func(*Context) string // file path relative to the module directory.
}

// Templates holds the artifact templates in generation order.
var Templates = []TypeTemplate{
	{
		Name: "interface.tmpl",
		Format: func(c *Context) string {
			return filepath.Join("Api", "Data", c.InterfaceName()+".php")
		},
	},
	{
		Name: "model.tmpl",
		Format: func(c *Context) string {
			return filepath.Join("Model", "Data", c.Entity+".php")
		},
	},
}

var templates = template.Must(template.New("dogen").ParseFS(templateDir, "template/*.tmpl"))
