package main

import (
	"os"

	"github.com/AnyUserName/imgsig-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
