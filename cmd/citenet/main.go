package main

import (
	"fmt"
	"os"

	"github.com/citenet/backend/internal/cli"
	"github.com/citenet/backend/internal/util"
)

func main() {
	util.LoadEnv()

	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
