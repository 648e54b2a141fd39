// Package main provides the aacboard CLI.
package main

import "github.com/mesh-intelligence/aacboard/internal/cli"

func main() {
	cli.Execute()
}
