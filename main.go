package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/pdf-outline-parser/internal/extract"
	"github.com/dtnitsch/pdf-outline-parser/internal/inspect"
	"github.com/dtnitsch/pdf-outline-parser/pkg/help"
	"github.com/urfave/cli/v2"
)

func main() {
	extractFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    "input-dir",
			Aliases: []string{"i"},
			Usage:   "directory scanned for *.pdf input documents",
		},
		&cli.StringFlag{
			Name:    "output-dir",
			Aliases: []string{"o"},
			Usage:   "directory receiving one <stem>.json artifact per document",
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "number of documents processed in parallel (1 = sequential)",
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "suppress diagnostic logging, keep console output",
		},
		&cli.BoolFlag{
			Name:  "skip-existing",
			Usage: "skip documents whose output artifact already exists",
		},
		&cli.StringFlag{
			Name:  "config",
			Value: "config.yaml",
			Usage: "optional YAML run configuration",
		},
	}

	app := &cli.App{
		Name:      "pdf-outline-parser",
		Usage:     "extract titles and leveled outlines from PDF documents",
		ArgsUsage: "[input_dir] [output_dir]",
		Flags:     extractFlags,
		Action:    extract.Action,
		Commands: []*cli.Command{
			{
				Name:      "extract",
				Usage:     "process a directory of PDFs (same as the default action)",
				ArgsUsage: "[input_dir] [output_dir]",
				Flags:     extractFlags,
				Action:    extract.Action,
			},
			{
				Name:      "inspect",
				Usage:     "dump profile and candidate diagnostics for one PDF",
				ArgsUsage: "<pdf>",
				Action:    inspect.Action,
			},
			{
				Name:  "quickstart",
				Usage: "print usage recipes",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
