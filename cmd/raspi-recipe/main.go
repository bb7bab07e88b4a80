package main

import (
	"github.com/NVIDIA/raspi-recipe/pkg/cli"
)

func main() {
	cli.Execute()
}
