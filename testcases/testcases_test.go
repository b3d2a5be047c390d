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

package testcases

import (
	"regexp"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validName = regexp.MustCompile(`^[a-z_]+$`)

func TestAll(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	log := logrus.NewEntry(logger)
	for category, cases := range All {
		seen := map[string]bool{}
		for _, tc := range cases {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				assert.Regexp(t, validName, tc.Name)
				assert.False(t, seen[tc.Name], "duplicate name")
				seen[tc.Name] = true

				c, err := tc.Chart(log)
				require.NoError(t, err)
				for i, s := range c.Series() {
					res := s.Paths()
					require.NotNil(t, res, "series %d", i)
					if res.Stroke != nil {
						assert.NotEmpty(t, res.Stroke.Cmds, "series %d", i)
					}
				}
				for _, a := range c.Axes() {
					st := a.State()
					assert.NotEmpty(t, st.Splits)
					assert.Len(t, st.Labels, len(st.Splits))
				}
			})
		}
	}
}

func TestFillRules(t *testing.T) {
	rules := map[FillRule]int{}
	for _, cases := range All {
		for _, tc := range cases {
			for _, s := range tc.Series {
				if op, ok := s.Op.(Fill); ok {
					rules[op.Rule]++
				}
			}
		}
	}
	assert.Positive(t, rules[NonZero])
	assert.Positive(t, rules[EvenOdd])
}
