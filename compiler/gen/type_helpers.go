package gen

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// delimiter separates words in table and column names.
const delimiter = "_"

// EntityFromTable derives an entity name from a table name: the last two
// underscore-separated segments (or the only one) with their first letter
// upper-cased, joined together. For example, bss_custom_entity becomes
// CustomEntity.
func EntityFromTable(table string) string {
	parts := strings.Split(table, delimiter)
	if len(parts) > 1 {
		parts = parts[len(parts)-2:]
	}
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(titleCase(p))
	}
	return b.String()
}

// camel converts a column name to its property form. The first segment is
// kept as is, so a name without delimiters comes back unchanged.
func camel(s string) string {
	parts := strings.Split(s, delimiter)
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		b.WriteString(capitalize(p))
	}
	return b.String()
}

// titleCase upper-cases the first letter of a string and leaves the rest untouched.
func titleCase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return cases.Upper(language.Und).String(string(r)) + s[size:]
}

// capitalize title-cases the first letter of a word and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return cases.Title(language.Und).String(string(r)) + cases.Lower(language.Und).String(s[size:])
}

// upper upper-cases the whole string.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}
