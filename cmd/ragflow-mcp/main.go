package main

import (
	"os"

	"github.com/trafflux/ragflow-mcp-go/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
