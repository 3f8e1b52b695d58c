/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/fast-version/pkg/check"
)

func domainsCmd() *cli.Command {
	return &cli.Command{
		Name:  "domains",
		Usage: "List the numeric domains, their widths and sentinels",
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return writeOutput(ctx, cmd, check.ListDomains())
		},
	}
}
