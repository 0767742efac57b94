package main

import (
	"os"

	// Import the cmd directory with root.go
	"github.com/redjax/gl/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
