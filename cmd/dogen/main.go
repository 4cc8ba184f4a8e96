// Command dogen generates Magento 2 data interfaces and data models
// from a db_schema.xml file.
package main

import (
	"os"

	"github.com/syssam/dogen/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
