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

package zobrist

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/xqengine/internal/types"
)

func TestNewSeeded_Deterministic(t *testing.T) {
	t1 := NewSeeded(rand.New(rand.NewSource(42)))
	t2 := NewSeeded(rand.New(rand.NewSource(42)))
	assert.Equal(t, t1.SideKey(), t2.SideKey())
	assert.Equal(t, t1.PieceKey(0, types.MakePiece(types.Red, types.King)), t2.PieceKey(0, types.MakePiece(types.Red, types.King)))
}

func TestNew_DiffersBetweenTables(t *testing.T) {
	t1 := New()
	t2 := New()
	assert.NotEqual(t, t1.SideKey(), t2.SideKey(), "two independently seeded tables should not collide on the side key")
}

func TestPieceKey_VariesBySquareAndPiece(t *testing.T) {
	tbl := NewSeeded(rand.New(rand.NewSource(1)))
	redKing := types.MakePiece(types.Red, types.King)
	blackKing := types.MakePiece(types.Black, types.King)

	assert.NotEqual(t, tbl.PieceKey(0, redKing), tbl.PieceKey(1, redKing), "different squares should use different keys")
	assert.NotEqual(t, tbl.PieceKey(0, redKing), tbl.PieceKey(0, blackKing), "different pieces on the same square should use different keys")
}
