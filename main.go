package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/df07/go-ris-ltc/pkg/logger"
)

// newApp assembles the command line application
func newApp() *cli.App {
	return &cli.App{
		Name:     "ris-ltc",
		HelpName: "ris-ltc",
		Usage:    "direct lighting with resampled importance sampling and linearly transformed cosines",
		Flags:    []cli.Flag{&logger.LogLevelFlag},
		Commands: []*cli.Command{
			&RenderCommand,
			&CompareCommand,
			&TableCommand,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
