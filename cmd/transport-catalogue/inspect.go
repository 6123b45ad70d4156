package main

import (
	"github.com/kr/pretty"
	"github.com/urfave/cli/v2"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/pipeline"
)

type busReport struct {
	Name        string
	IsRoundtrip bool
	Info        catalogue.BusInfo
}

type inspectReport struct {
	Stats catalogue.Stats
	Buses []busReport
}

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:  "inspect",
		Usage: "build the catalogue from a request document and dump its statistics",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Value: "-", Usage: "request document, - for stdin"},
		},
		Action: func(c *cli.Context) error {
			in, err := openInput(c.String("input"))
			if err != nil {
				return err
			}
			defer closeFile(in)

			cat, _, err := pipeline.Load(in)
			if err != nil {
				return err
			}

			report := inspectReport{Stats: cat.Stats()}
			for _, b := range cat.Buses() {
				report.Buses = append(report.Buses, busReport{
					Name:        b.Name,
					IsRoundtrip: b.IsRoundtrip,
					Info:        cat.BusInfo(b),
				})
			}
			_, err = pretty.Fprintf(c.App.Writer, "%# v\n", report)
			return err
		},
	}
}
