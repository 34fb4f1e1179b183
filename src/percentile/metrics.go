// Copyright (c) 2020 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package percentile

import "github.com/uber-go/tally"

type estimatorMetrics struct {
	invalidInputs   tally.Counter
	rangeExtensions tally.Counter
	arenaResizes    tally.Counter
	binCoarsenings  tally.Counter
}

func newEstimatorMetrics(scope tally.Scope) estimatorMetrics {
	scope = scope.SubScope("percentile")
	return estimatorMetrics{
		invalidInputs:   scope.Counter("invalid-inputs"),
		rangeExtensions: scope.Counter("range-extensions"),
		arenaResizes:    scope.Counter("arena-resizes"),
		binCoarsenings:  scope.Counter("bin-coarsenings"),
	}
}
