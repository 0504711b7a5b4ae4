package main

import (
	cli "gopkg.in/urfave/cli.v1"
)

var commands = cli.Commands{
	cli.Command{
		Name:    "info",
		Aliases: []string{"i"},
		Usage:   "Resolve a Landsat source and print its metadata and bands",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "extract-to", Usage: "Extraction destination for compressed sources"},
			cli.StringFlag{Name: "alias", Usage: "Label to attach to the archive"},
			cli.StringFlag{Name: "pattern", Usage: "Override the metadata filename pattern"},
			cli.StringFlag{Name: "band", Usage: "Print the file of a single band instead of the full report"},
		},
		Action: infoAction,
	},
	cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Launch the landsat-archive webserver",
		Action:  serveAction,
	},
	cli.Command{
		Name:   "ingest",
		Usage:  "Index the archive root once and exit",
		Action: ingestOnceAction,
	},
	cli.Command{
		Name:   "ingest_schedule",
		Usage:  "Run the scheduled ingest worker with its control endpoints",
		Action: ingestScheduleAction,
	},
	cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Update database schema",
		Action:  migrateDatabaseAction,
	},
	cli.Command{
		Name:    "version",
		Aliases: []string{"v"},
		Usage:   "Print the version number of the landsat-archive CLI",
		Action:  versionAction,
	},
}

func createCliApp() (app *cli.App) {
	app = cli.NewApp()
	app.Name = "landsat-archive"
	app.Usage = "Resolve, index and serve local Landsat archives"
	app.Commands = commands
	return
}
