package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "orbosis",
		Usage: "Member-facing edge service for the Orbosis NGO platform",
		Commands: []*cli.Command{
			serveCommand,
			seedCommand,
			tokenCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("application failed")
	}
}
