// Package compiler runs the data-object pipeline: it loads a schema,
// selects a table, and renders and writes the entity artifacts.
package compiler

import (
	"errors"
	"strings"

	"github.com/syssam/dogen/compiler/gen"
	"github.com/syssam/dogen/compiler/load"
)

// ErrEmptySchema is returned when the schema declares no tables.
var ErrEmptySchema = errors.New("dogen: no tables found in schema")

// Request describes one generation run.
type Request struct {
	Vendor string
	Module string
	// Entity overrides the name derived from the selected table.
	Entity string
	// Schema is the path of the db_schema.xml file.
	Schema string
	// Attributes is an inline "name:type,..." list used instead of a
	// schema when it is not blank. Entity is required with it.
	Attributes string
	// Selector picks the table when the schema is used. Nil selects
	// the first table without prompting.
	Selector Selector
}

// Result reports what a run produced.
type Result struct {
	Context *gen.Context
	Paths   []string
	// Metrics counts the files and bytes written. Both are zero in dry-run mode.
	Metrics gen.WriterMetrics
}

// Generate runs the pipeline. No file is written unless every earlier
// stage succeeded.
func Generate(req *Request, opts ...gen.Option) (*Result, error) {
	cfg, err := gen.NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	ctx, err := newContext(cfg, req)
	if err != nil {
		return nil, err
	}
	arts, err := gen.Render(cfg, ctx)
	if err != nil {
		return nil, err
	}
	w := gen.NewWriter(cfg)
	paths, err := w.Write(arts)
	if err != nil {
		return nil, err
	}
	return &Result{Context: ctx, Paths: paths, Metrics: *w.Metrics()}, nil
}

func newContext(cfg *gen.Config, req *Request) (*gen.Context, error) {
	log := cfg.Log()
	if list := strings.TrimSpace(req.Attributes); list != "" {
		if req.Entity == "" {
			return nil, gen.NewValidationError("", "entity", req.Entity, "entity name is required with an inline attribute list")
		}
		attrs := gen.ParseAttributes(list)
		log.Debug("using inline attributes", "entity", req.Entity, "count", len(attrs))
		return &gen.Context{
			Vendor:     req.Vendor,
			Module:     req.Module,
			Entity:     req.Entity,
			Attributes: attrs,
		}, nil
	}
	tables, err := load.Read(req.Schema)
	if err != nil {
		return nil, err
	}
	if len(tables) == 0 {
		return nil, ErrEmptySchema
	}
	log.Debug("schema loaded", "path", req.Schema, "tables", len(tables))
	sel := req.Selector
	if sel == nil {
		sel = FirstSelector{}
	}
	t, err := sel.Select(tables)
	if err != nil {
		return nil, err
	}
	log.Debug("table selected", "table", t.Name, "columns", t.ColumnNames())
	return gen.NewContext(req.Vendor, req.Module, req.Entity, t), nil
}
