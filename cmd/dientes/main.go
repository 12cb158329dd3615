// Command dientes is a product-grounded dental catalog assistant.
package main

import (
	"fmt"
	"os"

	"github.com/Pablo751/dientes/internal/adapters/driving/cli"
)

// version is injected at build time:
//
//	go build -ldflags "-X main.version=v1.2.3" ./cmd/dientes
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
