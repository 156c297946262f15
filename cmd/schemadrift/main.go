package main

import (
	"os"

	"github.com/schemadrift/schemadrift/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:]))
}
