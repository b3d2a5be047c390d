// seehuhn.de/go/chart - scales, ticks and path geometry for charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command chartgeom computes the geometry of the chart test cases.
//
// The export subcommand writes the paths of all test cases as JSON, pdf
// draws them into one PDF file per test case, and ticks prints the axis
// ticks for a given range.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	conf     Config
	confFile string
	logLevel string
)

func init() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	rootCmd.PersistentFlags().StringVar(&confFile, "config", "", "Configuration file (TOML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.AddCommand(exportCmd, pdfCmd, ticksCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chartgeom",
	Short: "Compute and inspect chart geometry",
	Long: `chartgeom builds the charts of the test case collection and writes
their scales, ticks and paths in machine readable or printable form.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c := DefaultConfig()
		if confFile != "" {
			fc, err := NewConfigWithFile(confFile)
			if err != nil {
				return err
			}
			c = fc
		}
		if logLevel != "" {
			c.LogLevel = logLevel
		}
		lvl, err := log.ParseLevel(c.LogLevel)
		if err != nil {
			return err
		}
		log.SetLevel(lvl)
		conf = *c
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Usage()
	},
}
