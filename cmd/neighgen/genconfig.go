// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"neighgen/pkg/config"
)

func newGenConfig(env *appEnv) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "gen-config <name>",
		Short: "Write a bundled example config to start a new setup from",
		Long: fmt.Sprintf("Outputs one of the bundled example configs. Choices: %s",
			strings.Join(config.ExampleNames(), ", ")),
		Example: `  neighgen gen-config yaml
  neighgen gen-config env -o .env`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			example, err := config.Example(args[0])
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true
			return writeResult(cmd, output, "example config", example)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "",
		"file/device to output the example config to, defaults to stdout")
	return cmd
}
