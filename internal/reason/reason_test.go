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

package reason

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/xqengine/internal/types"
)

func TestRender_EnglishIncludesDepthNodesAndScore(t *testing.T) {
	s := Render(English, 7, 12500, types.Value(180))
	assert.Contains(t, s, "depth 7")
	assert.Contains(t, s, "12.5")
	assert.Contains(t, s, "180")
}

func TestRender_SimplifiedChineseIncludesTheSameNumbers(t *testing.T) {
	s := Render(SimplifiedChinese, 3, 900, types.Value(-40))
	assert.Contains(t, s, "搜索深度 3")
	assert.Contains(t, s, "0.9")
	assert.Contains(t, s, "-40")
}

func TestRender_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	s := Render(Language(99), 1, 0, types.ValueZero)
	assert.Contains(t, s, "depth 1")
}

func TestRenderTimeout_MentionsRandomChoice(t *testing.T) {
	assert.Contains(t, RenderTimeout(English), "timed out")
	assert.Contains(t, RenderTimeout(SimplifiedChinese), "超时")
}

func TestRenderMate_DistinguishesCheckmateFromStalemate(t *testing.T) {
	assert.Contains(t, RenderMate(English, true), "checkmate")
	assert.Contains(t, RenderMate(English, false), "stalemate")
	assert.Contains(t, RenderMate(SimplifiedChinese, true), "被将死")
	assert.Contains(t, RenderMate(SimplifiedChinese, false), "困毙")
}
