// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"neighgen/pkg/gen"
)

func newSync(env *appEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync <asn...>",
		Short: "Refresh the cached PeeringDB records for one or more ASNs",
		Example: `  neighgen sync 210083
  neighgen sync 210083 as13335`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asns := make([]int, 0, len(args))
			for _, arg := range args {
				asn, err := gen.ExtractNumber(arg)
				if err != nil {
					return err
				}
				asns = append(asns, asn)
			}
			cmd.SilenceUsage = true

			svc, err := env.setup()
			if err != nil {
				return err
			}
			defer env.close()

			for _, asn := range asns {
				n, err := svc.Refresh(cmd.Context(), asn)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "AS%d (%s): refreshed %d IXPs, %d facilities, %d contacts\n",
					n.ASN, n.Name, len(n.Exchanges), len(n.Facilities), len(n.Contacts))
			}
			return nil
		},
	}
	return cmd
}
