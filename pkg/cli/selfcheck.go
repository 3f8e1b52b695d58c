/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/fast-version/pkg/check"
	"github.com/NVIDIA/fast-version/pkg/defaults"
	"github.com/NVIDIA/fast-version/pkg/version"
)

func selfCheckCmd() *cli.Command {
	return &cli.Command{
		Name:                  "selfcheck",
		EnableShellCompletion: true,
		Usage:                 "Compare the scalar and lanes backends on random samples",
		Description: `Sample versions and requirements in every numeric domain, biased toward
the min and max sentinels, and compare validity and fits between the scalar
and lanes backends. A seed of 0 picks a random seed; the report echoes the
seed so a failing run can be replayed.

# Examples

  fvctl selfcheck
  fvctl selfcheck -n 100000 -d u8 -d i64 --seed 42`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "samples",
				Aliases: []string{"n"},
				Usage:   "Samples per domain",
				Value:   defaults.SelfCheckSamples,
				Sources: cli.EnvVars("FVCTL_SELFCHECK_SAMPLES"),
			},
			&cli.Uint64Flag{
				Name:    "seed",
				Usage:   "Random seed (0 for random)",
				Sources: cli.EnvVars("FVCTL_SELFCHECK_SEED"),
			},
			&cli.StringSliceFlag{
				Name:    "domain",
				Aliases: []string{"d"},
				Usage:   "Domain to sample, can be repeated (default: all)",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, cancel := commandContext(ctx, cmd)
			defer cancel()

			opts := check.SelfCheckOptions{
				Samples: cmd.Int("samples"),
				Seed:    cmd.Uint64("seed"),
			}
			for _, s := range cmd.StringSlice("domain") {
				d, err := version.ParseDomain(s)
				if err != nil {
					return err
				}
				opts.Domains = append(opts.Domains, d)
			}

			report, err := check.SelfCheck(ctx, opts)
			if err != nil {
				return err
			}

			if err := writeOutput(ctx, cmd, report); err != nil {
				return err
			}

			if !report.Agree {
				return fmt.Errorf("backends disagree (seed %d)", report.Seed)
			}
			return nil
		},
	}
}
