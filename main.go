package main

import (
	"os"

	"github.com/dpshade/draftsmith/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
