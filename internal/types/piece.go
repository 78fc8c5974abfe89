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

package types

// Color is the side to move / side owning a piece.
type Color uint8

const (
	Red Color = iota
	Black
	ColorLength
)

// Flip returns the opposing color.
func (c Color) Flip() Color {
	if c == Red {
		return Black
	}
	return Red
}

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Piece packs color and piece type into a single byte: colour bits in
// 0x18, type bits in the low 3 bits. Zero means empty square.
type Piece uint8

// colour bits
const (
	ColorRed   Piece = 0x08
	ColorBlack Piece = 0x10
	ColorMask  Piece = 0x18
)

// piece type bits
const (
	NoPieceType PieceType = 0
	King        PieceType = 1
	Advisor     PieceType = 2
	Elephant    PieceType = 3
	Horse       PieceType = 4
	Rook        PieceType = 5
	Cannon      PieceType = 6
	Pawn        PieceType = 7
	TypeMask    PieceType = 0x07
)

// PieceType is the low 3 bits of a Piece.
type PieceType uint8

// PieceNone is the empty-square sentinel (the zero value of Piece).
const PieceNone Piece = 0

// MakePiece builds a Piece from a color and a piece type.
func MakePiece(c Color, pt PieceType) Piece {
	if c == Red {
		return ColorRed | Piece(pt)
	}
	return ColorBlack | Piece(pt)
}

// ColorOf returns the colour bits of a piece as a Color. Only valid
// when the piece is not PieceNone.
func (p Piece) ColorOf() Color {
	if p&ColorRed != 0 {
		return Red
	}
	return Black
}

// TypeOf returns the piece type (low 3 bits).
func (p Piece) TypeOf() PieceType {
	return PieceType(p) & TypeMask
}

// IsEmpty reports whether the piece code represents an empty square.
func (p Piece) IsEmpty() bool {
	return p == PieceNone
}

var pieceTypeLetters = map[PieceType]string{
	King: "K", Advisor: "A", Elephant: "E", Horse: "H",
	Rook: "R", Cannon: "C", Pawn: "P",
}

// Letter returns the single-letter notation for the piece, upper case
// for Red and lower case for Black, matching the FEN-ish convention used
// by Position.String().
func (p Piece) Letter() string {
	if p.IsEmpty() {
		return "."
	}
	letter := pieceTypeLetters[p.TypeOf()]
	if p.ColorOf() == Black {
		return toLower(letter)
	}
	return letter
}

func toLower(s string) string {
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
