package main

import (
	"os"

	"github.com/luoyen/weibot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
