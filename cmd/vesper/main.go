package main

import "github.com/vesperapp/vesper/internal/cli"

func main() {
	cli.Execute()
}
