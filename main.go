package main

import (
	"os"

	"github.com/thenoetrevino/flowmaster/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
