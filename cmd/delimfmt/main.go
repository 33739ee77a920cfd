package main

import (
	"os"

	"github.com/rohit/delimfmt/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
