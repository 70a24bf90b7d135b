package main

import "github.com/mcoot/wordshop/internal/cli"

func main() {
	cli.Execute()
}
