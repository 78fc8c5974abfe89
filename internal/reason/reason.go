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

// Package reason renders the short human-readable explanation returned
// alongside every engine move: the deepest completed depth, the node
// count and the sign-prefixed score, in the caller's chosen language.
package reason

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/xqengine/internal/types"
)

// Language selects which of the two reasoning strings GetBestMove
// renders.
type Language int

// Supported reasoning languages.
const (
	English Language = iota
	SimplifiedChinese
)

var printers = map[Language]*message.Printer{
	English:           message.NewPrinter(language.English),
	SimplifiedChinese: message.NewPrinter(language.SimplifiedChinese),
}

// Render builds the reasoning string for one completed search: the
// deepest depth iterative deepening finished, the node count (reported
// in thousands) and the score from the mover's perspective.
func Render(lang Language, depth int, nodes uint64, score types.Value) string {
	p := printers[lang]
	if p == nil {
		p = printers[English]
	}
	kNodes := float64(nodes) / 1000.0
	switch lang {
	case SimplifiedChinese:
		return p.Sprintf("搜索深度 %d，%.1f 千节点，评分 %s", depth, kNodes, score)
	default:
		return p.Sprintf("depth %d, %.1f k nodes, score %s", depth, kNodes, score)
	}
}

// RenderTimeout builds the reasoning string for the "deadline elapsed
// before any depth finished" fallback, where the engine returns a
// legal move chosen at random with a reported score of zero.
func RenderTimeout(lang Language) string {
	p := printers[lang]
	if p == nil {
		p = printers[English]
	}
	switch lang {
	case SimplifiedChinese:
		return p.Sprintf("超时，随机选择一个合法着法")
	default:
		return p.Sprintf("timed out before completing a search, chose a random legal move")
	}
}

// RenderMate builds the reasoning string for a position with no legal
// move: checkmate when inCheck is true, stalemate otherwise.
func RenderMate(lang Language, inCheck bool) string {
	p := printers[lang]
	if p == nil {
		p = printers[English]
	}
	if inCheck {
		if lang == SimplifiedChinese {
			return p.Sprintf("被将死")
		}
		return p.Sprintf("checkmate, no legal move")
	}
	if lang == SimplifiedChinese {
		return p.Sprintf("困毙")
	}
	return p.Sprintf("stalemate, no legal move")
}
