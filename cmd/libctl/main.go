package main

import (
	"fmt"
	"os"

	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/cli"
)

func main() {
	if err := cli.NewRootCommand(cli.DefaultOpener).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
