// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"neighgen/pkg/gen"
	"neighgen/pkg/model"
	"neighgen/pkg/report"
	"neighgen/pkg/sources/peeringdb"
)

func newASInfoRaw(env *appEnv) *cobra.Command {
	var flags struct {
		output   string
		listIXPs bool
		listFacs bool
		onlyIXPs bool
		onlyFacs bool
		noPretty bool
	}
	cmd := &cobra.Command{
		Use:   "asinfo-raw <asn> [format]",
		Short: "Output an ASN's PeeringDB record as JSON, YAML or XML",
		Example: `  neighgen asinfo-raw 210083
  neighgen asinfo-raw -x -F 210083
  neighgen asinfo-raw --only-exchanges 210083 yml
  neighgen asinfo-raw -x -F 210083 xml`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			asn, err := gen.ExtractNumber(args[0])
			if err != nil {
				return err
			}
			format := "json"
			if len(args) > 1 {
				format = args[1]
			}
			if _, err := report.Normalize(format); err != nil {
				return err
			}
			cmd.SilenceUsage = true

			svc, err := env.setup()
			if err != nil {
				return err
			}
			defer env.close()

			depth := 0
			if flags.listIXPs || flags.listFacs || flags.onlyIXPs || flags.onlyFacs {
				depth = peeringdb.FullDepth
			}
			n, err := svc.LookupOne(cmd.Context(), asn, depth)
			if err != nil {
				return err
			}

			// Parent back-references are purged from the mappings so the
			// serializers never walk a cycle.
			var res any
			switch {
			case flags.onlyIXPs:
				maps := make([]map[string]any, 0, len(n.Exchanges))
				for _, ix := range n.Exchanges {
					maps = append(maps, ix.ToMap())
				}
				res = model.Purge(maps)
			case flags.onlyFacs:
				maps := make([]map[string]any, 0, len(n.Facilities))
				for _, fc := range n.Facilities {
					maps = append(maps, fc.ToMap())
				}
				res = model.Purge(maps)
			default:
				res = model.Purge(n.ToMap())
			}

			out, err := report.Marshal(format, res, !flags.noPretty)
			if err != nil {
				return err
			}
			return writeResult(cmd, flags.output, report.Extension(format)+" data", out)
		},
	}
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"file/device to output the generated data to, defaults to stdout")
	cmd.Flags().BoolVarP(&flags.listIXPs, "list-exchanges", "x", false,
		"fetch at full depth so the IXP membership records are expanded")
	cmd.Flags().BoolVarP(&flags.listFacs, "list-facilities", "F", false,
		"fetch at full depth so the facility membership records are expanded")
	cmd.Flags().BoolVar(&flags.onlyIXPs, "only-exchanges", false,
		"print ONLY information about the ASN's exchanges")
	cmd.Flags().BoolVar(&flags.onlyFacs, "only-facilities", false,
		"print ONLY information about the ASN's facilities")
	cmd.Flags().BoolVar(&flags.noPretty, "no-pretty", false,
		"disable pretty printing, print flat JSON/YML/XML")
	return cmd
}
