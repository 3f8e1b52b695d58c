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
	fverrors "github.com/NVIDIA/fast-version/pkg/errors"
	"github.com/NVIDIA/fast-version/pkg/protocol"
	"github.com/NVIDIA/fast-version/pkg/serializer"
)

func negotiateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "negotiate",
		EnableShellCompletion: true,
		Usage:                 "Check remote protocol identifiers against the local table",
		Description: `Negotiate a NegotiateRequest document against a local protocol table.
Each remote protocol is reported as compatible, unknown, local-rejects or
remote-rejects.

The local table holds the built-in PingPong protocol unless --local names a
document listing protocols.

# Examples

  fvctl negotiate -f remote.yaml
  fvctl negotiate -f remote.yaml --local protocols.yaml --fail-on-incompatible`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "request",
				Aliases:  []string{"f"},
				Required: true,
				Usage:    "Path/URL to a NegotiateRequest document, or - for stdin",
			},
			&cli.StringFlag{
				Name:    "local",
				Aliases: []string{"l"},
				Usage:   "Path/URL to a list of local protocol documents",
				Sources: cli.EnvVars("FVCTL_LOCAL_PROTOCOLS"),
			},
			&cli.BoolFlag{
				Name:  "fail-on-incompatible",
				Usage: "Exit with non-zero status if no remote protocol is compatible",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, cancel := commandContext(ctx, cmd)
			defer cancel()

			table, err := localTable(ctx, cmd.String("local"))
			if err != nil {
				return err
			}

			req, err := serializer.FromFile[check.NegotiateRequest](ctx, cmd.String("request"))
			if err != nil {
				return fmt.Errorf("failed to load negotiate request: %w", err)
			}

			res, err := check.Negotiate(ctx, table, req)
			if err != nil {
				return err
			}

			if err := writeOutput(ctx, cmd, res); err != nil {
				return err
			}

			if cmd.Bool("fail-on-incompatible") && res.Compatible == 0 {
				return fverrors.New(fverrors.ErrCodeIncompatible, "no compatible protocol")
			}
			return nil
		},
	}
}

// localTable builds the local protocol table from path, or from PingPong
// when path is empty.
func localTable(ctx context.Context, path string) (*protocol.Table, error) {
	if path == "" {
		return protocol.NewTable(protocol.PingPong())
	}

	docs, err := serializer.FromFile[[]protocol.Document](ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load local protocols: %w", err)
	}

	ids, err := check.ParseProtocols(*docs)
	if err != nil {
		return nil, err
	}
	return protocol.NewTable(ids...)
}
