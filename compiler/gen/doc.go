// Package gen provides code generation for Magento 2 data objects.
//
// This package turns a table description into the two PHP files Magento
// expects for a service contract data object: the data interface under
// Api/Data and its implementation under Model/Data.
//
// # Architecture
//
// The generation pipeline follows this flow:
//
//	db_schema.xml (load.Table)  or  "name:type,..." list
//	        ↓
//	   Context (vendor, module, entity, attributes)
//	        ↓
//	   Render (embedded text/template files)
//	        ↓
//	   Writer (directories first, then files)
//
// # Key Types
//
//   - Attribute: one column with its PHP type and derived names
//   - Context: everything that determines the rendered output
//   - Artifacts: the rendered interface and model
//   - Config: output root, dry-run mode and logger
//
// # Naming
//
// Column names map to PHP identifiers as follows:
//
//	first_name → FIRST_NAME         (interface constant)
//	first_name → firstName          (parameter)
//	first_name → setFirstName       (setter)
//	first_name → getFirstName       (getter)
//
// Entity names default to the last two segments of the table name, so
// bss_custom_entity produces CustomEntity.
//
// # Type Mapping
//
// Schema column types are mapped case-insensitively:
//
//	int, smallint, bigint           → int
//	decimal, float, double          → float
//	boolean                         → bool
//	timestamp, datetime, date       → \DateTimeInterface
//	anything else                   → string
//
// # Error Handling
//
//   - ConfigError: invalid options
//   - ValidationError: empty vendor, module, entity or attribute names
//   - GenerationError: template or filesystem failures
//
// Example:
//
//	arts, err := gen.Render(cfg, ctx)
//	if err != nil {
//	    if gen.IsValidationError(err) {
//	        // Report the offending name
//	    }
//	    return err
//	}
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	cfg, err := gen.NewConfig(
//	    gen.WithRoot("app/code"),
//	    gen.WithDryRun(true),
//	)
package gen
