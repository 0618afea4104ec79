package main

import (
	"github.com/graphref/sidegraph/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
