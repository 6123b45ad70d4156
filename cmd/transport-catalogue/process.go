package main

import (
	"bytes"
	"context"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/theoremus-urban-solutions/transport-catalogue/config"
	"github.com/theoremus-urban-solutions/transport-catalogue/pipeline"
)

func processCommand() *cli.Command {
	return &cli.Command{
		Name:  "process",
		Usage: "read a request document and write the answers as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Value: "-", Usage: "request document, - for stdin"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: "-", Usage: "answer file, - for stdout"},
			&cli.IntFlag{Name: "workers", Usage: "concurrent stat query workers (overrides config)"},
		},
		Action: func(c *cli.Context) error {
			opts := config.Config.PipelineOptions()
			if c.IsSet("workers") {
				opts.Workers = c.Int("workers")
			}

			in, err := openInput(c.String("input"))
			if err != nil {
				return err
			}
			defer closeFile(in)

			return process(c.Context, in, c.String("output"), opts)
		},
	}
}

// process answers the request read from in and writes the answers to the
// named output. The output is only created once every answer is ready, so
// a failed run leaves an existing file untouched.
func process(ctx context.Context, in io.Reader, output string, opts pipeline.Options) error {
	var buf bytes.Buffer
	if err := pipeline.Run(ctx, in, &buf, opts); err != nil {
		return err
	}

	out, err := createOutput(output)
	if err != nil {
		return err
	}
	defer closeFile(out)
	_, err = buf.WriteTo(out)
	return err
}
