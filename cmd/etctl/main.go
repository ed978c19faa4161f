package main

import (
	"github.com/mufasadev/encounter-types/internal/cli"
)

func main() {
	cli.Execute()
}
