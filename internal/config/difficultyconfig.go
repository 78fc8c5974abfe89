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

// DifficultyPreset is the (depth, time) pair a difficulty level resolves
// to. Exported so internal/search can read it without this package
// knowing anything about the search package's own Difficulty type.
type DifficultyPreset struct {
	MaxDepth   int
	MoveTimeMs int
}

// difficultyConfiguration holds the five named presets from the
// engine's difficulty ladder, each overridable independently from the
// config file.
type difficultyConfiguration struct {
	Beginner     DifficultyPreset
	Intermediate DifficultyPreset
	Expert       DifficultyPreset
	Master       DifficultyPreset
	Grandmaster  DifficultyPreset
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Difficulty.Beginner = DifficultyPreset{MaxDepth: 3, MoveTimeMs: 800}
	Settings.Difficulty.Intermediate = DifficultyPreset{MaxDepth: 5, MoveTimeMs: 1500}
	Settings.Difficulty.Expert = DifficultyPreset{MaxDepth: 7, MoveTimeMs: 2500}
	Settings.Difficulty.Master = DifficultyPreset{MaxDepth: 10, MoveTimeMs: 4000}
	Settings.Difficulty.Grandmaster = DifficultyPreset{MaxDepth: 24, MoveTimeMs: 6000}
}

// set defaults for configurations here in case a configuration is not
// available from the config file.
func setupDifficulty() {
}
