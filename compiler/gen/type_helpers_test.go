package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityFromTable(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"bss_custom_entity", "CustomEntity"},
		{"widget", "Widget"},
		{"a_b_c", "BC"},
		{"sales_order", "SalesOrder"},
		{"vendor_module_order_item", "OrderItem"},
		{"catalog_productLink", "CatalogProductLink"},
		{"custom_", "Custom"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, EntityFromTable(tt.input))
		})
	}
}

func TestCamel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"first_name", "firstName"},
		{"id", "id"},
		{"ID", "ID"},
		{"Title", "Title"},
		{"customer_ID", "customerId"},
		{"entity_id", "entityId"},
		{"a__b", "aB"},
		{"is_active_flag", "isActiveFlag"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, camel(tt.input))
		})
	}
}

func TestCaseHelpers(t *testing.T) {
	assert.Equal(t, "Foo", titleCase("foo"))
	assert.Equal(t, "FOO", titleCase("FOO"))
	assert.Equal(t, "Élan", titleCase("élan"))
	assert.Equal(t, "", titleCase(""))

	assert.Equal(t, "Foo", capitalize("fOO"))
	assert.Equal(t, "", capitalize(""))

	assert.Equal(t, "FIRST_NAME", upper("first_name"))
	assert.Equal(t, "STRASSE", upper("straße"))
}
