// Package main is the entry point for the groupctl binary.
package main

import (
	"os"

	"eperson-backend/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
