package main

import (
	"fmt"
	"os"

	"github.com/jbonatakis/backcast/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
