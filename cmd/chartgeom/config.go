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

package main

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/BurntSushi/toml"

	"seehuhn.de/go/chart/testcases"
)

// Config holds the settings read from the configuration file.
type Config struct {
	OutDir     string   `toml:"out_dir"`
	LogLevel   string   `toml:"log_level"`
	Categories []string `toml:"categories"` // empty means all
	Grid       bool     `toml:"grid"`       // draw axis ticks into the PDF
	Render     bool     `toml:"render"`     // convert PDF files to PNG
	GhostPath  string   `toml:"ghostscript"`
}

// DefaultConfig returns the settings used without a configuration file.
func DefaultConfig() *Config {
	return &Config{
		OutDir:    "testdata/geometry",
		LogLevel:  "info",
		Grid:      true,
		GhostPath: "gs",
	}
}

// NewConfigWithFile reads the configuration from a TOML file.  Settings
// missing from the file keep their default values.
func NewConfigWithFile(name string) (*Config, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return NewConfig(string(data))
}

// NewConfig parses a TOML configuration.
func NewConfig(data string) (*Config, error) {
	c := DefaultConfig()
	md, err := toml.Decode(data, c)
	if err != nil {
		return nil, err
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("unknown configuration key %q", undec[0].String())
	}
	for _, cat := range c.Categories {
		if _, ok := testcases.All[cat]; !ok {
			return nil, fmt.Errorf("unknown test case category %q", cat)
		}
	}
	return c, nil
}

// categories returns the selected test case categories in sorted order.
func (c *Config) categories() []string {
	if len(c.Categories) == 0 {
		return slices.Sorted(maps.Keys(testcases.All))
	}
	return slices.Sorted(slices.Values(c.Categories))
}
