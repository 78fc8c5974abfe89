//
// xqengine - Xiangqi search engine written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/xqengine/internal/types"
)

func TestStoreKiller_PromotesAndAvoidsDuplicates(t *testing.T) {
	tbl := NewTables()
	m1 := types.NewMove(types.NewSquare(0, 0), types.NewSquare(1, 0))
	m2 := types.NewMove(types.NewSquare(0, 1), types.NewSquare(1, 1))
	m3 := types.NewMove(types.NewSquare(0, 2), types.NewSquare(1, 2))

	tbl.StoreKiller(5, m1)
	first, second := tbl.Killers(5)
	assert.Equal(t, m1, first)
	assert.Equal(t, types.MoveNone, second)

	tbl.StoreKiller(5, m2)
	first, second = tbl.Killers(5)
	assert.Equal(t, m2, first, "a new killer takes the first slot")
	assert.Equal(t, m1, second, "the previous first slot is demoted, not dropped")

	tbl.StoreKiller(5, m1)
	first, second = tbl.Killers(5)
	assert.Equal(t, m1, first, "a move already in the second slot is promoted, not duplicated")
	assert.Equal(t, m2, second)

	tbl.StoreKiller(5, m1)
	first, second = tbl.Killers(5)
	assert.Equal(t, m1, first, "storing the current first-slot killer again is a no-op")
	assert.Equal(t, m2, second)

	_ = m3
}

func TestKillers_OutOfRangePlyIsSafe(t *testing.T) {
	tbl := NewTables()
	first, second := tbl.Killers(-1)
	assert.Equal(t, types.MoveNone, first)
	assert.Equal(t, types.MoveNone, second)

	first, second = tbl.Killers(MaxPly)
	assert.Equal(t, types.MoveNone, first)
	assert.Equal(t, types.MoveNone, second)

	tbl.StoreKiller(MaxPly+10, types.NewMove(types.NewSquare(0, 0), types.NewSquare(1, 0)))
}

func TestAddCutoff_WeightsByDepthSquared(t *testing.T) {
	tbl := NewTables()
	m := types.NewMove(types.NewSquare(2, 2), types.NewSquare(3, 2))

	tbl.AddCutoff(types.Red, m, 3)
	assert.EqualValues(t, 9, tbl.History(types.Red, m))

	tbl.AddCutoff(types.Red, m, 4)
	assert.EqualValues(t, 9+16, tbl.History(types.Red, m))

	// depth <= 0 is floored to 1, not ignored or negative-squared.
	tbl.AddCutoff(types.Red, m, 0)
	assert.EqualValues(t, 9+16+1, tbl.History(types.Red, m))
}

func TestHistory_IsPerColor(t *testing.T) {
	tbl := NewTables()
	m := types.NewMove(types.NewSquare(4, 4), types.NewSquare(5, 4))

	tbl.AddCutoff(types.Red, m, 2)
	assert.EqualValues(t, 4, tbl.History(types.Red, m))
	assert.EqualValues(t, 0, tbl.History(types.Black, m), "a cutoff for Red must not bleed into Black's table")
}

func TestClear_ResetsHistoryAndKillers(t *testing.T) {
	tbl := NewTables()
	m := types.NewMove(types.NewSquare(0, 0), types.NewSquare(1, 0))
	tbl.AddCutoff(types.Red, m, 5)
	tbl.StoreKiller(3, m)

	tbl.Clear()

	assert.EqualValues(t, 0, tbl.History(types.Red, m))
	first, second := tbl.Killers(3)
	assert.Equal(t, types.MoveNone, first)
	assert.Equal(t, types.MoveNone, second)
}

func TestString_OnlyListsNonZeroCounts(t *testing.T) {
	tbl := NewTables()
	assert.Empty(t, tbl.String())

	m := types.NewMove(types.NewSquare(0, 0), types.NewSquare(1, 0))
	tbl.AddCutoff(types.Black, m, 2)
	assert.Contains(t, tbl.String(), "count=4")
}
