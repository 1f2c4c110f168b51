package main

import (
	"github.com/yuniko/biscuit/cmd"
)

func main() {
	cmd.Execute()
}
