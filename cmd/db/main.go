package main

import "github.com/RamiAli24/taskdb/internal/cli"

func main() {
	cli.Execute()
}
