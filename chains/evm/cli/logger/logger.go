// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package logger

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

var sensitiveFlags = map[string]struct{}{
	"mnemonic":    {},
	"private-key": {},
}

// LoggerMetadata logs the command name with the values of its set flags.
// Key material is masked.
func LoggerMetadata(cmdName string, flagSet *pflag.FlagSet) {
	l := log.Debug().Str("command", cmdName)
	flagSet.VisitAll(func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		if _, ok := sensitiveFlags[f.Name]; ok {
			l = l.Str(f.Name, "***")
			return
		}
		l = l.Str(f.Name, f.Value.String())
	})
	l.Msg("command metadata")
}
