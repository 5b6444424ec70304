// Package main provides the feedforward CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("feedforward %s\n", version)
		return
	}

	fmt.Println("feedforward - a single-hidden-layer perceptron library for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("See examples/xor for a runnable training demo.")
}
