package main

import (
	"context"
	"fmt"

	"orbosis/internal/seed"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the profile store with demo records",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "volunteers",
			Aliases: []string{"n"},
			Usage:   "Number of demo volunteers to generate",
			Value:   8,
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if cfg.StoreDriver == "memory" {
			return fmt.Errorf("seeding the memory store is pointless, set STORE_DRIVER to sqlite or redis")
		}

		ctx := context.Background()

		profileStore, closeStore, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		logrus.Info("Seeding demo donor...")
		if err := seed.DemoDonor(ctx, profileStore); err != nil {
			return fmt.Errorf("failed to seed demo donor: %w", err)
		}

		logrus.Info("Seeding demo volunteers...")
		if err := seed.Volunteers(ctx, profileStore, c.Int("volunteers")); err != nil {
			return fmt.Errorf("failed to seed volunteers: %w", err)
		}

		logrus.Info("Seed data written successfully")

		return nil
	},
}
