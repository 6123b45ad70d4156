package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/theoremus-urban-solutions/transport-catalogue/config"
	"github.com/theoremus-urban-solutions/transport-catalogue/internal"
)

func main() {
	// a missing .env is fine
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "transport-catalogue",
		Usage: "Build a transit catalogue from a JSON request and answer its queries",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "configuration file (.yml, .yaml or .toml)",
				EnvVars: []string{"CATALOGUE_CONFIG"},
			},
		},
		Before: func(c *cli.Context) error {
			if err := config.LoadAppConfig(c.String("config")); err != nil {
				return err
			}
			internal.InitLogging(config.Config.Logging)
			return nil
		},
		Commands: []*cli.Command{
			processCommand(),
			importGTFSCommand(),
			inspectCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

// openInput returns stdin for "" and "-".
func openInput(name string) (*os.File, error) {
	if name == "" || name == "-" {
		return os.Stdin, nil
	}
	return os.Open(name)
}

// createOutput returns stdout for "" and "-".
func createOutput(name string) (*os.File, error) {
	if name == "" || name == "-" {
		return os.Stdout, nil
	}
	return os.Create(name)
}

func closeFile(f *os.File) {
	if f == os.Stdin || f == os.Stdout {
		return
	}
	if err := f.Close(); err != nil {
		log.Error().Err(err).Str("file", f.Name()).Msg("close failed")
	}
}
