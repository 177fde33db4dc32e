package main

import (
	"os"

	"github.com/bjaus/datagrid/cmd/gridview/app"
)

func main() {
	cmd := app.NewGridviewCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
