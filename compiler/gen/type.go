package gen

import (
	"strings"

	"github.com/syssam/dogen/compiler/load"
)

// Attribute is one property of the generated data object, rendered as a
// constant and a setter/getter pair.
type Attribute struct {
	// Name is the column name, e.g. first_name.
	Name string
	// Type is the PHP type of the property.
	Type string
}

// NewAttribute returns the attribute of a schema column.
func NewAttribute(c *load.Column) *Attribute {
	return &Attribute{Name: c.Name, Type: MapType(c.Type)}
}

// Property returns the property form of the name (first_name → firstName).
// It is also used as the PHP parameter name.
func (a Attribute) Property() string { return camel(a.Name) }

// Accessor returns the method suffix shared by the setter and getter
// (first_name → FirstName).
func (a Attribute) Accessor() string { return titleCase(a.Property()) }

// Setter returns the setter method name.
func (a Attribute) Setter() string { return "set" + a.Accessor() }

// Getter returns the getter method name.
func (a Attribute) Getter() string { return "get" + a.Accessor() }

// Constant returns the interface constant holding the data key
// (first_name → FIRST_NAME).
func (a Attribute) Constant() string { return upper(a.Name) }

// ParseAttributes parses an inline attribute list of the form
// "name:type,name2:type2". Entries without a type default to TypeString
// and explicit types are used verbatim. Blank entries are skipped.
func ParseAttributes(list string) []*Attribute {
	var attrs []*Attribute
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		name, typ, ok := strings.Cut(item, ":")
		if !ok {
			attrs = append(attrs, &Attribute{Name: item, Type: TypeString})
			continue
		}
		attrs = append(attrs, &Attribute{Name: strings.TrimSpace(name), Type: strings.TrimSpace(typ)})
	}
	return attrs
}

// Context fully determines the rendered artifacts of one entity.
type Context struct {
	Vendor     string
	Module     string
	Entity     string
	Attributes []*Attribute
}

// NewContext builds the generation context of a table. When entity is
// empty it is derived from the table name.
func NewContext(vendor, module, entity string, t *load.Table) *Context {
	if entity == "" {
		entity = EntityFromTable(t.Name)
	}
	attrs := make([]*Attribute, len(t.Columns))
	for i, c := range t.Columns {
		attrs[i] = NewAttribute(c)
	}
	return &Context{
		Vendor:     vendor,
		Module:     module,
		Entity:     entity,
		Attributes: attrs,
	}
}

// Validate checks that the names used in namespaces and paths are set.
func (c *Context) Validate() error {
	switch {
	case c.Vendor == "":
		return NewValidationError(c.Entity, "vendor", c.Vendor, "vendor name cannot be empty")
	case c.Module == "":
		return NewValidationError(c.Entity, "module", c.Module, "module name cannot be empty")
	case c.Entity == "":
		return NewValidationError("", "entity", c.Entity, "entity name cannot be empty")
	}
	for _, a := range c.Attributes {
		if a.Name == "" {
			return NewValidationError(c.Entity, "attribute", a.Name, "attribute name cannot be empty")
		}
	}
	return nil
}

// InterfaceName returns the data interface name.
func (c Context) InterfaceName() string { return c.Entity + "Interface" }
