package main

import "podium/internal/cli"

func main() {
	cli.Execute()
}
