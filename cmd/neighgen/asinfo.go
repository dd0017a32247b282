// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"neighgen/pkg/gen"
	"neighgen/pkg/report"
	"neighgen/pkg/sources/peeringdb"
)

func newASInfo(env *appEnv) *cobra.Command {
	var flags struct {
		listIXPs bool
		listFacs bool
	}
	cmd := &cobra.Command{
		Use:   "asinfo <asn>",
		Short: "Display PeeringDB information about an ASN",
		Example: `  neighgen asinfo 210083
  neighgen asinfo -x 210083
  neighgen asinfo -x -F as210083`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asn, err := gen.ExtractNumber(args[0])
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			svc, err := env.setup()
			if err != nil {
				return err
			}
			defer env.close()

			// Membership tables need the expanded sub-records; the plain
			// overview gets by on a shallow fetch.
			depth := 0
			if flags.listIXPs || flags.listFacs {
				depth = peeringdb.FullDepth
			}
			n, err := svc.LookupOne(cmd.Context(), asn, depth)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			report.ASInfo(out, n)
			if flags.listIXPs {
				report.ExchangeTable(out, n)
			}
			if flags.listFacs {
				report.FacilityTable(out, n)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&flags.listIXPs, "list-exchanges", "x", false,
		"display a table of IXPs which the given ASN is a member of")
	cmd.Flags().BoolVarP(&flags.listFacs, "list-facilities", "F", false,
		"display a table of facilities which the given ASN is present within")
	return cmd
}
