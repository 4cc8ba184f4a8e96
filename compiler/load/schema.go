// Package load reads Magento db_schema.xml files into table descriptors.
package load

import (
	"encoding/xml"
	"errors"
	"io/fs"
	"os"

	"aqwari.net/xml/xmltree"
)

// XSINamespace is the namespace of the xsi:type attribute carrying column types.
const XSINamespace = "http://www.w3.org/2001/XMLSchema-instance"

// Table represents a <table> element loaded from a schema file.
type Table struct {
	Name    string    `json:"name,omitempty"`
	Columns []*Column `json:"columns,omitempty"`
}

// Column represents a <column> element of a table.
type Column struct {
	Name string `json:"name,omitempty"`
	// Type is the raw xsi:type tag. It is empty when the column has none.
	Type string `json:"type,omitempty"`
}

// ColumnNames returns the column names in document order.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Read loads the schema file at path. The existence of the file is checked
// before anything is parsed, and an absent file yields a NotFoundError.
func Read(path string) ([]*Table, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path, Cause: err}
		}
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tables, err := Parse(data)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}
	return tables, nil
}

// Parse parses a schema document. Tables are the direct <table> children
// of the root element and columns the direct <column> children of a table,
// both kept in document order.
func Parse(data []byte) ([]*Table, error) {
	root, err := xmltree.Parse(data)
	if err != nil {
		return nil, &ParseError{Cause: err}
	}
	if root == nil {
		return nil, &ParseError{Cause: errors.New("no root element")}
	}
	var tables []*Table
	for i := range root.Children {
		el := &root.Children[i]
		if el.Name.Local != "table" {
			continue
		}
		t := &Table{Name: attr(el, "", "name")}
		for j := range el.Children {
			col := &el.Children[j]
			if col.Name.Local != "column" {
				continue
			}
			t.Columns = append(t.Columns, &Column{
				Name: attr(col, "", "name"),
				Type: columnType(col),
			})
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// columnType returns the xsi:type of a column element. A document that
// uses the xsi prefix without declaring it leaves the prefix unresolved.
func columnType(el *xmltree.Element) string {
	if v, ok := lookup(el.StartElement.Attr, XSINamespace, "type"); ok {
		return v
	}
	v, _ := lookup(el.StartElement.Attr, "xsi", "type")
	return v
}

func attr(el *xmltree.Element, space, local string) string {
	v, _ := lookup(el.StartElement.Attr, space, local)
	return v
}

func lookup(attrs []xml.Attr, space, local string) (string, bool) {
	for _, a := range attrs {
		if a.Name.Space == space && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}
