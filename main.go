package main

import (
	"flag"
	"fmt"
	"os"
	"swiped/internal/di"
	"swiped/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "c", "config.yaml", "path to the config file")
	flag.BoolVar(&flags.DebugMode, "d", false, "enable debug mode")
	flag.Parse()

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "swiped: %s\n", err)
		os.Exit(1)
	}
}
