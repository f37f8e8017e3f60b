// Command tk inspects widget types and checks UI descriptions.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/tk/cmd/tk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
