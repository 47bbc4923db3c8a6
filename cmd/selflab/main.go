package main

import (
	"os"

	"github.com/rpggio/selflab/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
