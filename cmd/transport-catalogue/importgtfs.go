package main

import (
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/theoremus-urban-solutions/transport-catalogue/config"
	"github.com/theoremus-urban-solutions/transport-catalogue/gtfs"
	"github.com/theoremus-urban-solutions/transport-catalogue/jsondoc"
)

func importGTFSCommand() *cli.Command {
	return &cli.Command{
		Name:  "import-gtfs",
		Usage: "convert a GTFS static zip into base_requests",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "feed", Aliases: []string{"f"}, Required: true, Usage: "GTFS zip file"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: "-", Usage: "request file, - for stdout"},
			&cli.Float64Flag{Name: "distance-scale", Usage: "shape_dist_traveled to metres multiplier (overrides config)"},
		},
		Action: func(c *cli.Context) error {
			opts := gtfs.Options{
				DistanceScale:    config.Config.GTFS.DistanceScale,
				DetectRoundtrips: config.Config.GTFS.DetectRoundtrips,
			}
			if c.IsSet("distance-scale") {
				opts.DistanceScale = c.Float64("distance-scale")
			}

			feed, err := gtfs.NewFeedFromFile(c.String("feed"))
			if err != nil {
				return err
			}
			doc, err := gtfs.BaseRequests(feed, opts)
			if err != nil {
				return err
			}

			out, err := createOutput(c.String("output"))
			if err != nil {
				return err
			}
			defer closeFile(out)
			if err := jsondoc.Print(out, doc); err != nil {
				return err
			}

			log.Info().Str("feed", c.String("feed")).Msg("gtfs feed converted")
			return nil
		},
	}
}
