// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

func newDumpConfig(env *appEnv) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "dump-config",
		Short: "Dump the effective running config as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := env.load()
			if err != nil {
				return err
			}
			out, err := cfg.Dump()
			if err != nil {
				return err
			}
			return writeResult(cmd, output, "dumped config", out)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "",
		"file/device to output the dumped config to, defaults to stdout")
	return cmd
}
