// SPDX-License-Identifier: MIT

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"neighgen/pkg/gen"
	"neighgen/pkg/model"
	"neighgen/pkg/sources/peeringdb"
)

func newNeigh(env *appEnv) *cobra.Command {
	var flags struct {
		exact  bool
		limit  int
		osName string
		output string

		peerTemplate string
		peerSession  string
		peerPolicyV4 string
		peerPolicyV6 string
		asName       string

		trimName  bool
		trimWords int

		useMaxPrefixes bool
		maxPrefixesV4  int
		maxPrefixesV6  int

		lockVersion   bool
		unlockVersion bool
	}
	cmd := &cobra.Command{
		Use:   "neigh <asn> [ixp-name]",
		Short: "Generate a BGP neighbor config for an ASN via PeeringDB",
		Long: `Generates BGP neighbor configuration for peering with the given ASN.
Without an ixp-name, neighbors are generated for every IXP the network is
a member of; with one, only for IXPs whose name matches (case-insensitive
substring by default, full name with --exact-match).`,
		Example: `  neighgen neigh 210083
  neighgen neigh 210083 ams-ix
  neighgen neigh -o ios 210083 ams-ix
  neighgen neigh --peer-policy-v4 '' --peer-policy-v6 '' -o ios 210083 ams-ix
  neighgen neigh -X 13335 ams-ix`,
		Args: cobra.RangeArgs(1, 2),
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
			cfg, err := env.load()
			if err != nil {
				return err
			}

			n, err := svc.LookupOne(cmd.Context(), asn, peeringdb.FullDepth)
			if err != nil {
				return err
			}

			ixlist := n.Exchanges
			if len(args) > 1 && args[1] != "" {
				ixlist = nil
				for ix := range n.FindIXPs(model.IXPFilter{Name: args[1], Exact: flags.exact}) {
					ixlist = append(ixlist, ix)
				}
			}
			// The limit caps the matched set, applied after collecting it.
			if flags.limit > 0 && flags.limit < len(ixlist) {
				ixlist = ixlist[:flags.limit]
			}

			fl := cmd.Flags()
			opts := gen.NeighOpts{Network: n, OS: flags.osName}
			if fl.Changed("peer-template") {
				opts.PeerTemplate = &flags.peerTemplate
			}
			if fl.Changed("peer-session") {
				opts.PeerSession = &flags.peerSession
			}
			if fl.Changed("peer-policy-v4") {
				opts.PeerPolicyV4 = &flags.peerPolicyV4
			}
			if fl.Changed("peer-policy-v6") {
				opts.PeerPolicyV6 = &flags.peerPolicyV6
			}
			if fl.Changed("as-name") {
				opts.ASName = &flags.asName
			}
			if fl.Changed("trim-name") {
				opts.TrimName = &flags.trimName
			}
			if fl.Changed("trim-words") {
				opts.TrimWords = &flags.trimWords
			}
			if fl.Changed("use-max-prefixes") {
				opts.UseMaxPrefixes = &flags.useMaxPrefixes
			}
			if fl.Changed("max-prefixes-v4") {
				opts.MaxPrefixesV4 = &flags.maxPrefixesV4
			}
			if fl.Changed("max-prefixes-v6") {
				opts.MaxPrefixesV6 = &flags.maxPrefixesV6
			}
			switch {
			case fl.Changed("unlock-version") && flags.unlockVersion:
				unlocked := false
				opts.LockVersion = &unlocked
			case fl.Changed("lock-version"):
				opts.LockVersion = &flags.lockVersion
			}

			var out strings.Builder
			for i, ix := range ixlist {
				opts.PeerIndex = i + 1
				nb, err := gen.GenerateNeigh(cfg, ix, opts)
				if err != nil {
					return err
				}
				out.WriteString(nb)
			}
			return writeResult(cmd, flags.output, "neighbour config", out.String())
		},
	}
	cmd.Flags().BoolVarP(&flags.exact, "exact-match", "X", false,
		"match ixp-name against IXP names EXACTLY")
	cmd.Flags().IntVarP(&flags.limit, "limit", "L", 0,
		"limit how many IXPs can be matched by the query (0 = unlimited)")
	cmd.Flags().StringVarP(&flags.osName, "os", "o", "",
		"the OS to generate the config for (ios, nxos, or a .tmpl file)")
	cmd.Flags().StringVarP(&flags.output, "output", "f", "",
		"file/device to output the generated config to, defaults to stdout")
	cmd.Flags().StringVar(&flags.peerTemplate, "peer-template", "",
		"the name of the peer template to use")
	cmd.Flags().StringVar(&flags.peerSession, "peer-session", "",
		"the name of the peer session to use")
	cmd.Flags().StringVar(&flags.peerPolicyV4, "peer-policy-v4", "",
		"the name of the IPv4 peer policy to use (empty disables it)")
	cmd.Flags().StringVar(&flags.peerPolicyV6, "peer-policy-v6", "",
		"the name of the IPv6 peer policy to use (empty disables it)")
	cmd.Flags().StringVar(&flags.asName, "as-name", "",
		"use a manually specified network name instead of the PeeringDB one")
	cmd.Flags().BoolVarP(&flags.trimName, "trim-name", "T", false,
		"trim the IXP's name down to trim-words words")
	cmd.Flags().IntVar(&flags.trimWords, "trim-words", 0,
		"the number of words to trim the IXP's name down to")
	cmd.Flags().BoolVar(&flags.useMaxPrefixes, "use-max-prefixes", false,
		"enable adding max-prefixes limit commands")
	cmd.Flags().IntVar(&flags.maxPrefixesV4, "max-prefixes-v4", 0,
		"IPv4 max prefix limit (overrides the PeeringDB value)")
	cmd.Flags().IntVar(&flags.maxPrefixesV6, "max-prefixes-v6", 0,
		"IPv6 max prefix limit (overrides the PeeringDB value)")
	cmd.Flags().BoolVar(&flags.lockVersion, "lock-version", false,
		"disable the opposite address version in each neighbor")
	cmd.Flags().BoolVar(&flags.unlockVersion, "unlock-version", false,
		"do NOT disable the opposite address version in each neighbor")
	return cmd
}
