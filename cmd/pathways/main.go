// pathways explores private capital pathways for marine conservation.
package main

import (
	"os"

	"github.com/hupe1980/pathways/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
