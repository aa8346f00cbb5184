package main

import "galaxy-audit/internal/cli"

func main() {
	cli.Execute()
}
