package main

import "github.com/jackielii/pagesite/internal/cli"

func main() {
	cli.Execute()
}
