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

// LogLevels maps the names accepted on the command line to the
// go-logging level values used by the logging package.
var LogLevels = map[string]int{
	"critical": 1,
	"error":    2,
	"warning":  3,
	"notice":   4,
	"info":     5,
	"debug":    6,
}

type logConfiguration struct {
	LogPath      string
	LogLvl       string
	SearchLogLvl string
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Log.LogPath = "./logs"
	Settings.Log.LogLvl = "info"
	Settings.Log.SearchLogLvl = "info"
}

// setupLogLvl resolves the log level names from the config file (or
// defaults) into the numeric LogLevel/SearchLogLevel used by the
// logging package. Command line flags applied after Setup win over it.
func setupLogLvl() {
	if lvl, found := LogLevels[Settings.Log.LogLvl]; found {
		LogLevel = lvl
	}
	if lvl, found := LogLevels[Settings.Log.SearchLogLvl]; found {
		SearchLogLevel = lvl
	}
}
