// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/toeirei/rankscope/internal/i18n"
	"github.com/toeirei/rankscope/internal/logging"
)

func newDebugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "debug",
		Short: "Dump debug information about config, env, flags and settings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "--- RANKSCOPE DEBUG ---")
			fmt.Fprintf(out, "Config file used: %s\n", configFileUsed)

			b, err := yaml.Marshal(appConfig)
			if err != nil {
				logging.Errorf("could not marshal config: %v", err)
			} else {
				fmt.Fprintln(out, "-- effective config --")
				fmt.Fprint(out, string(b))
			}

			fmt.Fprintln(out, "-- flags --")
			cmd.Flags().VisitAll(func(f *pflag.Flag) {
				fmt.Fprintf(out, "%s = %s\n", f.Name, f.Value.String())
			})

			fmt.Fprintln(out, "-- environment (RANKSCOPE_*) --")
			for _, e := range os.Environ() {
				if strings.HasPrefix(e, "RANKSCOPE_") {
					fmt.Fprintln(out, e)
				}
			}

			fmt.Fprintln(out, "-- locales --")
			locales := i18n.GetAvailableLocales()
			codes := make([]string, 0, len(locales))
			for c := range locales {
				codes = append(codes, c)
			}
			sort.Strings(codes)
			for _, c := range codes {
				fmt.Fprintf(out, "%s = %s\n", c, locales[c])
			}
			fmt.Fprintln(out, "--- END DEBUG ---")
		},
	}
}
