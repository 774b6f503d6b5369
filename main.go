package main

import (
	"dbpatch/cli"
)

func main() {
	cli.Start()
}
