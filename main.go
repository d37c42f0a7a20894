package main

import (
	"stepper/cli"
)

func main() {
	cli.Start()
}
