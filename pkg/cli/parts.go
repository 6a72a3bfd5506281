/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/relver/pkg/header"
	"github.com/NVIDIA/relver/pkg/source"
	ver "github.com/NVIDIA/relver/pkg/version"
)

// partsDocument is the result of parts.
type partsDocument struct {
	header.Header `json:",inline" yaml:",inline"`

	Current string      `json:"current" yaml:"current"`
	Source  source.Kind `json:"source" yaml:"source"`
	Regex   string      `json:"regex" yaml:"regex"`
	Parts   []int       `json:"parts" yaml:"parts"`
}

func partsCmd() *cli.Command {
	flags := append([]cli.Flag{
		&cli.StringFlag{
			Name:  flagRegex,
			Value: ver.ThreeDigitBranchRegex,
			Usage: "Regex matching the whole version; every capturing group must be an integer",
		},
	}, sourceFlags()...)
	flags = append(flags, outputFlag(), formatFlag())

	return &cli.Command{
		Name:                  "parts",
		EnableShellCompletion: true,
		Usage:                 "Print the integer components of a version",
		Description: `Match the current version against --regex and print the integer value
of every capturing group. The default regex is the 3db pattern.

Example:
  relver parts --current 1.2.0-SNAPSHOT -t json`,
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			cur, err := resolveCurrent(cmd)
			if err != nil {
				return err
			}

			regex := cmd.String(flagRegex)
			parts, err := ver.ExtractIntegerParts(cur.Version, regex)
			if err != nil {
				return fmt.Errorf("failed to parse version: %w", err)
			}

			doc := partsDocument{
				Current: cur.Version,
				Source:  cur.Kind,
				Regex:   regex,
				Parts:   parts,
			}
			doc.Init(header.KindVersionParts, version)

			return writeResult(ctx, cmd, doc)
		},
	}
}
