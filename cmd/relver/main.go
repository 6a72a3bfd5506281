package main

import (
	"github.com/NVIDIA/relver/pkg/cli"
)

func main() {
	cli.Execute()
}
