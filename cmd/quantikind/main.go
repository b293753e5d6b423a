// Command quantikind manages kind catalogs, resolves kinds and generates
// typed Go kinds.
package main

import (
	"os"

	"github.com/mesh-intelligence/quantikind/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
