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

package paths

import (
	"math"

	"github.com/bits-and-blooms/bitset"
)

// Column holds the values of one series, aligned by index with the key
// column.
//
// Two kinds of missing samples are distinguished.  A null sample is a
// genuine gap in the data: lines are not drawn across it.  An undefined
// sample is an artifact of aligning several series to a shared key
// column, and is skipped silently unless it borders a null sample.
type Column struct {
	Vals  []float64
	null  bitset.BitSet
	undef bitset.BitSet
}

// NewColumn returns a column with the given values.  NaN values are
// marked as null.
func NewColumn(vals []float64) *Column {
	c := &Column{Vals: vals}
	for i, v := range vals {
		if math.IsNaN(v) {
			c.null.Set(uint(i))
		}
	}
	return c
}

// Len returns the number of samples.
func (c *Column) Len() int {
	return len(c.Vals)
}

// SetNull marks sample i as a gap.
func (c *Column) SetNull(i int) {
	c.undef.Clear(uint(i))
	c.null.Set(uint(i))
}

// SetUndef marks sample i as an alignment artifact.
func (c *Column) SetUndef(i int) {
	c.null.Clear(uint(i))
	c.undef.Set(uint(i))
}

// IsNull reports whether sample i is a gap.
func (c *Column) IsNull(i int) bool {
	return c.null.Test(uint(i))
}

// IsUndef reports whether sample i is an alignment artifact.
func (c *Column) IsUndef(i int) bool {
	return c.undef.Test(uint(i))
}

// Defined reports whether sample i has a value.
func (c *Column) Defined(i int) bool {
	return !c.null.Test(uint(i)) && !c.undef.Test(uint(i))
}

// Missing returns the number of null and undefined samples.
func (c *Column) Missing() int {
	return int(c.null.Count() + c.undef.Count())
}

// defined returns the first and last defined index in [idx0, idx1].
func (c *Column) defined(idx0, idx1 int) (int, int, bool) {
	for idx0 <= idx1 && !c.Defined(idx0) {
		idx0++
	}
	for idx1 >= idx0 && !c.Defined(idx1) {
		idx1--
	}
	return idx0, idx1, idx0 <= idx1
}
