package main

import "github.com/spotiskill/spotiskill/internal/cli"

func main() {
	cli.Execute()
}
