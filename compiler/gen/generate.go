package gen

import (
	"bytes"
	"path/filepath"
)

// Artifact is one rendered file.
type Artifact struct {
	Path    string
	Content []byte
}

// Artifacts holds the data interface and data model of an entity.
type Artifacts struct {
	Interface *Artifact
	Model     *Artifact
}

// All returns the artifacts in write order.
func (a *Artifacts) All() []*Artifact {
	return []*Artifact{a.Interface, a.Model}
}

// BasePath returns the module directory: {root}/{vendor}/{module}.
func BasePath(root, vendor, module string) string {
	return filepath.Join(root, vendor, module)
}

// Render executes the artifact templates for c. It does no I/O, and the
// same context always renders to the same bytes.
func Render(cfg *Config, c *Context) (*Artifacts, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	root := DefaultRoot
	if cfg != nil && cfg.Root != "" {
		root = cfg.Root
	}
	base := BasePath(root, c.Vendor, c.Module)
	out := make([]*Artifact, len(Templates))
	for i, tmpl := range Templates {
		var buf bytes.Buffer
		if err := templates.ExecuteTemplate(&buf, tmpl.Name, c); err != nil {
			return nil, NewGenerationError("render", tmpl.Format(c), "execute template "+tmpl.Name, err)
		}
		out[i] = &Artifact{
			Path:    filepath.Join(base, tmpl.Format(c)),
			Content: buf.Bytes(),
		}
	}
	return &Artifacts{Interface: out[0], Model: out[1]}, nil
}
