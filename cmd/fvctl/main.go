package main

import (
	"github.com/NVIDIA/fast-version/pkg/cli"
)

func main() {
	cli.Execute()
}
