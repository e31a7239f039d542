package main

import (
	"fmt"
	"os"

	"github.com/maxgabut/pitest/internal/cli"
	"github.com/maxgabut/pitest/log"
)

func main() {
	log.Default()
	Execute()
}

// Execute runs the root command. This is called by main.main(). It only needs to happen once.
func Execute() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
