package main

import (
	"os"

	"lineio/internal/cmd"
)

func main() {
	if err := cmd.RootCmd(cmd.NewAppBuilder()).Execute(); err != nil {
		os.Exit(1)
	}
}
