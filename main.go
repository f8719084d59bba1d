// main.go - Einstiegspunkt der ThoraScan CLI
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/thorascan/thorascan/cmd"
)

func main() {
	if err := cmd.NewCLI().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
