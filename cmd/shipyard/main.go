// Package main provides the shipyard CLI.
package main

import "github.com/mesh-intelligence/shipyard/internal/cli"

func main() {
	cli.Execute()
}
