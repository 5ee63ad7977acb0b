// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package util

import (
	"github.com/spf13/cobra"
)

// CallPersistentPreRun runs the persistent pre-run hook of the closest
// ancestor that defines one. Cobra only runs the hook closest to the
// executed command, so commands with their own hook chain up explicitly.
func CallPersistentPreRun(cmd *cobra.Command, args []string) error {
	for parent := cmd.Parent(); parent != nil; parent = parent.Parent() {
		if parent.PersistentPreRunE != nil {
			return parent.PersistentPreRunE(cmd, args)
		}
		if parent.PersistentPreRun != nil {
			parent.PersistentPreRun(cmd, args)
			return nil
		}
	}
	return nil
}
