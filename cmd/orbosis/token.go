package main

import (
	"fmt"

	"orbosis/internal/utils"

	"github.com/urfave/cli/v2"
)

var tokenCommand = &cli.Command{
	Name:  "token",
	Usage: "Generate placeholder auth tokens for manual testing",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"c"},
			Usage:   "Number of tokens to generate",
			Value:   1,
		},
		&cli.StringFlag{
			Name:    "role",
			Aliases: []string{"r"},
			Usage:   "Role prefix for the token",
			Value:   "donor",
		},
	},
	Action: func(c *cli.Context) error {
		count := c.Int("count")
		for i := 0; i < count; i++ {
			fmt.Printf("%s_%s\n", c.String("role"), utils.NanoID())
		}
		return nil
	},
}
