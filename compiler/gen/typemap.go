package gen

import "strings"

// PHP types produced by MapType.
const (
	TypeInt      = "int"
	TypeFloat    = "float"
	TypeBool     = "bool"
	TypeString   = "string"
	TypeDateTime = `\DateTimeInterface`
)

// typeMap maps Magento column types (xsi:type) to PHP types.
var typeMap = map[string]string{
	"int":       TypeInt,
	"smallint":  TypeInt,
	"bigint":    TypeInt,
	"decimal":   TypeFloat,
	"float":     TypeFloat,
	"double":    TypeFloat,
	"boolean":   TypeBool,
	"varchar":   TypeString,
	"text":      TypeString,
	"timestamp": TypeDateTime,
	"datetime":  TypeDateTime,
	"date":      TypeDateTime,
}

// MapType returns the PHP type for a column type, ignoring case.
// Unknown and empty types map to TypeString.
func MapType(raw string) string {
	if t, ok := typeMap[strings.ToLower(raw)]; ok {
		return t
	}
	return TypeString
}
