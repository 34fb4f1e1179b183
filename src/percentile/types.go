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

// Package percentile estimates percentiles and percentile ranks over an
// unbounded stream of values using a histogram of fixed-resolution bins.
package percentile

import (
	"github.com/m3db/hbpe/src/x/instrument"
)

// Bin is a half-open interval [Lower, Upper) of the value domain together
// with the number of observations that fell inside it. The outermost bounds
// are infinite when a bin reaches past the largest finite float64.
type Bin struct {
	Lower float64
	Upper float64
	Count uint64
}

// Estimator is a histogram based percentile estimator.
//
// Ranks are expressed in [0, 100]. Percentile and PercentileRank return
// ErrEmpty until the first value is recorded.
type Estimator interface {
	// Add records a value.
	Add(value float64) error

	// Percentile returns the estimated value at percentile rank p.
	Percentile(p float64) (float64, error)

	// PercentileRank returns the estimated percentage of recorded values
	// that are less than or equal to value.
	PercentileRank(value float64) (float64, error)

	// RankThenAdd returns the percentile rank of value among the values
	// recorded so far and then records it. The rank of the first value
	// recorded is zero. A value is recorded if and only if no error is
	// returned.
	RankThenAdd(value float64) (float64, error)

	// Count returns the number of recorded values.
	Count() uint64

	// Min returns the smallest recorded value, NaN if nothing was recorded.
	Min() float64

	// Max returns the largest recorded value, NaN if nothing was recorded.
	Max() float64

	// BinWidth returns the current width of every bin, zero if nothing
	// was recorded.
	BinWidth() float64

	// Bins returns a copy of the bins covering the recorded range.
	Bins() []Bin
}

// Options provides a set of estimator options.
type Options interface {
	// SetPrecision sets the number of decimal digits the finest bins
	// resolve, the finest bin width being 10^-precision.
	SetPrecision(value int) Options

	// Precision returns the number of decimal digits the finest bins resolve.
	Precision() int

	// SetMaxBins sets the maximum number of bins, beyond which adjacent bins
	// are merged into bins twice as wide.
	SetMaxBins(value int) Options

	// MaxBins returns the maximum number of bins.
	MaxBins() int

	// SetSynchronized sets whether estimators are safe for concurrent use.
	SetSynchronized(value bool) Options

	// Synchronized returns whether estimators are safe for concurrent use.
	Synchronized() bool

	// SetInstrumentOptions sets the instrument options.
	SetInstrumentOptions(value instrument.Options) Options

	// InstrumentOptions returns the instrument options.
	InstrumentOptions() instrument.Options

	// Validate validates the options.
	Validate() error
}
