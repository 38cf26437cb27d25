package main

import (
	"fmt"
	"os"

	"github.com/BerryBytes/hrctl/cmd/root"
	"github.com/BerryBytes/hrctl/internal/app"
)

var version = "dev"

func main() {
	a := app.New(version)
	if err := root.NewRootCmd(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
