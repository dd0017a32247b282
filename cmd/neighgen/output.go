// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"neighgen/pkg/report"
)

func isStdout(dest string) bool {
	return dest == "" || dest == "-" || dest == "/dev/stdout"
}

// writeResult sends content to stdout or, when dest names a file, writes
// the file with progress notes on stderr. kind names the payload in those
// notes.
func writeResult(cmd *cobra.Command, dest, kind, content string) error {
	if isStdout(dest) {
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	}
	report.Notef(cmd.ErrOrStderr(), "Writing %s to file: %s", kind, dest)
	if err := os.WriteFile(dest, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s to %s: %w", kind, dest, err)
	}
	report.Successf(cmd.ErrOrStderr(), "Successfully wrote %s to file: %s", kind, dest)
	return nil
}
