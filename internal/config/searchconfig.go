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

package config

// searchConfiguration holds the toggles and tuning constants for the
// search, mirroring the pruning/extension/ordering switches a western
// chess engine exposes but trimmed to what this engine actually
// implements (no pondering, no opening book - both are non-goals).
type searchConfiguration struct {
	// Transposition table
	UseTT  bool
	TTSize int // table size in MB

	// Null-move pruning
	UseNullMove  bool
	NmpMinDepth  int
	NmpReduction int

	// Late move reduction
	UseLmr           bool
	LmrMinDepth      int
	LmrMinLegalMoves int

	// Principal variation search / aspiration windows
	UsePVS        bool
	UseAspiration bool
	AspirationMargin int

	// Move ordering
	UseKillers bool
	UseHistory bool

	// Time management: poll the deadline every this many nodes.
	TimeCheckInterval uint64
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Search.UseTT = true
	Settings.Search.TTSize = 64

	Settings.Search.UseNullMove = true
	Settings.Search.NmpMinDepth = 3
	Settings.Search.NmpReduction = 2

	Settings.Search.UseLmr = true
	Settings.Search.LmrMinDepth = 3
	Settings.Search.LmrMinLegalMoves = 4

	Settings.Search.UsePVS = true
	Settings.Search.UseAspiration = true
	Settings.Search.AspirationMargin = 50

	Settings.Search.UseKillers = true
	Settings.Search.UseHistory = true

	Settings.Search.TimeCheckInterval = 2048
}

// set defaults for configurations here in case a configuration is not
// available from the config file.
func setupSearch() {
}
