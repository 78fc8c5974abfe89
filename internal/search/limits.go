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
	"time"

	"github.com/frankkopp/xqengine/internal/config"
)

// MaxDepth caps the number of iterative-deepening iterations: a
// Limits.MaxDepth of zero or above it is clamped to it. Grandmaster is
// the deepest configured preset at 24, so this leaves comfortable headroom.
const MaxDepth = 64

// Difficulty selects one of the five preset (depth, time) search
// limits a caller can ask the engine for.
type Difficulty int

// Difficulty levels, weakest to strongest.
const (
	Beginner Difficulty = iota
	Intermediate
	Expert
	Master
	Grandmaster
)

func (d Difficulty) String() string {
	switch d {
	case Beginner:
		return "Beginner"
	case Intermediate:
		return "Intermediate"
	case Expert:
		return "Expert"
	case Master:
		return "Master"
	case Grandmaster:
		return "Grandmaster"
	default:
		return "Unknown"
	}
}

// Limits bounds one search: it runs at most MaxDepth iterations of
// iterative deepening, or MoveTime of wall-clock time, whichever comes
// first.
type Limits struct {
	MaxDepth int
	MoveTime time.Duration
}

// LimitsFor resolves a Difficulty to concrete search limits from the
// current configuration, so a config file can retune the ladder
// without a rebuild.
func LimitsFor(d Difficulty) Limits {
	p := presetFor(d)
	return Limits{
		MaxDepth: p.MaxDepth,
		MoveTime: time.Duration(p.MoveTimeMs) * time.Millisecond,
	}
}

func presetFor(d Difficulty) config.DifficultyPreset {
	switch d {
	case Beginner:
		return config.Settings.Difficulty.Beginner
	case Intermediate:
		return config.Settings.Difficulty.Intermediate
	case Expert:
		return config.Settings.Difficulty.Expert
	case Master:
		return config.Settings.Difficulty.Master
	default:
		return config.Settings.Difficulty.Grandmaster
	}
}
