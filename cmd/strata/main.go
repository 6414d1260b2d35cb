package main

import "github.com/katalvlaran/strata/internal/cli"

func main() {
	cli.Execute()
}
