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

// Package history provides the move-ordering tables fed back from the
// search: a from/to history counter bumped on every quiet-move beta cutoff and a
// per-ply killer table. Indexing by the raw from/to square pair keeps
// the table a plain fixed-size array, just as the counter-move and
// history-count tables the search ordering is modelled on do.
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/xqengine/internal/types"
)

var out = message.NewPrinter(language.English)

// MaxPly bounds the killer table - no search this engine runs goes
// deeper than this many plies from the root.
const MaxPly = 64

// Tables bundles the killer-move and history-heuristic tables used to
// order quiet moves during a single search. Count is indexed by
// [color][from][to] the same way the search's legality and ordering
// code addresses squares elsewhere.
type Tables struct {
	Count   [types.ColorLength][256][256]int32
	killers [MaxPly][2]types.Move
}

// NewTables returns a freshly zeroed set of tables, ready for a new
// search.
func NewTables() *Tables {
	return &Tables{}
}

// Clear resets both tables. The search calls it only from NewGame, so
// the tables carry over from one search to the next within a game.
func (t *Tables) Clear() {
	for c := range t.Count {
		for f := range t.Count[c] {
			for to := range t.Count[c][f] {
				t.Count[c][f][to] = 0
			}
		}
	}
	for i := range t.killers {
		t.killers[i][0] = types.MoveNone
		t.killers[i][1] = types.MoveNone
	}
}

// Killers returns the two killer moves stored for ply.
func (t *Tables) Killers(ply int) (types.Move, types.Move) {
	if ply < 0 || ply >= MaxPly {
		return types.MoveNone, types.MoveNone
	}
	return t.killers[ply][0], t.killers[ply][1]
}

// StoreKiller records m as a killer at ply, promoting it to the first
// slot and demoting whatever was there to the second slot. A move
// already in either slot is not duplicated.
func (t *Tables) StoreKiller(ply int, m types.Move) {
	if ply < 0 || ply >= MaxPly {
		return
	}
	slots := &t.killers[ply]
	if slots[0] == m {
		return
	}
	if slots[1] == m {
		slots[0], slots[1] = slots[1], slots[0]
		return
	}
	slots[1] = slots[0]
	slots[0] = m
}

// History returns the accumulated history score for a move played by
// color c.
func (t *Tables) History(c types.Color, m types.Move) int32 {
	return t.Count[c][m.From()][m.To()]
}

// AddCutoff bumps the history score of a quiet move that caused a beta
// cutoff, weighted by depth squared so cutoffs found deep in the tree
// (more search effort behind them) count for more than shallow ones.
func (t *Tables) AddCutoff(c types.Color, m types.Move, depth int) {
	if depth <= 0 {
		depth = 1
	}
	t.Count[c][m.From()][m.To()] += int32(depth * depth)
}

// String renders the non-zero history counts, mirroring the verbose
// dump the search's other tables print for diagnostics.
func (t *Tables) String() string {
	sb := strings.Builder{}
	for c := range t.Count {
		for f := range t.Count[c] {
			for to := range t.Count[c][f] {
				if t.Count[c][f][to] == 0 {
					continue
				}
				sb.WriteString(out.Sprintf("color=%d from=%d to=%d count=%d\n", c, f, to, t.Count[c][f][to]))
			}
		}
	}
	return sb.String()
}
