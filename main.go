package main

import (
	"github.com/kinesia-app/kinesia/cmd"
)

func main() {
	cmd.Execute()
}
