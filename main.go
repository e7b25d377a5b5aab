// Package main is the entry point for the deskcycle tray application.
package main

import (
	"os"

	"github.com/Norgate-AV/deskcycle/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
