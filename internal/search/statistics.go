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

package search

import (
	"fmt"
	"time"

	"github.com/frankkopp/xqengine/internal/util"
)

// Statistics is a purely observational record of one search: it never
// feeds back into search behaviour, it just reports on it, the way a
// UCI "info" line does.
type Statistics struct {
	Nodes   uint64
	Depth   int
	Elapsed time.Duration

	TTHits   uint64
	TTMisses uint64
	TTCuts   uint64

	NullMoveCuts uint64

	LmrReductions uint64
	LmrResearches uint64

	Mates      uint64
	Stalemates uint64
}

func (s Statistics) String() string {
	return fmt.Sprintf(
		"nodes=%d depth=%d nps=%d ttHits=%d ttMisses=%d ttCuts=%d nullMoveCuts=%d lmrReductions=%d lmrResearches=%d mates=%d stalemates=%d",
		s.Nodes, s.Depth, util.Nps(s.Nodes, s.Elapsed), s.TTHits, s.TTMisses, s.TTCuts, s.NullMoveCuts, s.LmrReductions, s.LmrResearches, s.Mates, s.Stalemates)
}
