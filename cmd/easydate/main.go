package main

import (
	"os"

	"github.com/d-r-k-k-l-n-r-j-w-l/easy-date-timeline/internal/cli"
)

func main() {
	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
