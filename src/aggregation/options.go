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

package aggregation

import (
	"github.com/m3db/hbpe/src/x/instrument"

	"github.com/uber-go/tally"
)

// Options is the options for aggregations.
type Options struct {
	// Metrics is a set of aggregation metrics.
	Metrics Metrics
}

// Metrics is a set of metrics that can be used by elements.
type Metrics struct {
	Timer TimerMetrics
}

// TimerMetrics is a set of timer metrics that can be used by all timers.
type TimerMetrics struct {
	invalidValues tally.Counter
}

// NewMetrics is a set of aggregation metrics.
func NewMetrics(scope tally.Scope) Metrics {
	scope = scope.SubScope("aggregation")
	return Metrics{
		Timer: newTimerMetrics(scope.SubScope("timers")),
	}
}

func newTimerMetrics(scope tally.Scope) TimerMetrics {
	return TimerMetrics{
		invalidValues: scope.Counter("invalid-values"),
	}
}

// IncInvalidValues increments value or if not initialized is a no-op.
func (m TimerMetrics) IncInvalidValues() {
	if m.invalidValues != nil {
		m.invalidValues.Inc(1)
	}
}

// NewOptions creates a new aggregation options.
func NewOptions(instrumentOpts instrument.Options) Options {
	return Options{
		Metrics: NewMetrics(instrumentOpts.MetricsScope()),
	}
}
