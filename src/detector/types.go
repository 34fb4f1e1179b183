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

// Package detector flags observations that are unusually high or low
// compared to every observation made before them.
package detector

import (
	"github.com/m3db/hbpe/src/x/instrument"
)

// Result classifies an observation.
type Result int

const (
	// Warmup means too few values were observed to judge the value.
	Warmup Result = iota
	// Normal means the value ranked between the low and high thresholds.
	Normal
	// High means the value ranked at or above the high threshold.
	High
	// Low means the value ranked at or below the low threshold.
	Low
)

func (r Result) String() string {
	switch r {
	case Warmup:
		return "warmup"
	case Normal:
		return "normal"
	case High:
		return "high"
	case Low:
		return "low"
	}
	return "unknown"
}

// Stats counts observations per result.
type Stats struct {
	Observed uint64
	Warmup   uint64
	Normal   uint64
	High     uint64
	Low      uint64
}

// Detector classifies values by their percentile rank among the values
// observed before them.
type Detector interface {
	// Observe ranks value against the previous observations, records it
	// and returns its classification. On error nothing is recorded and the
	// result is the zero Result.
	Observe(value float64) (Result, error)

	// Stats returns the number of observations per result.
	Stats() Stats
}

// Options provides a set of detector options.
type Options interface {
	// SetHighRank sets the rank at or above which a value is High.
	SetHighRank(value float64) Options

	// HighRank returns the rank at or above which a value is High.
	HighRank() float64

	// SetLowRank sets the rank at or below which a value is Low, a
	// negative rank disables Low results.
	SetLowRank(value float64) Options

	// LowRank returns the rank at or below which a value is Low.
	LowRank() float64

	// SetMinSamples sets the number of observations classified as Warmup.
	SetMinSamples(value int) Options

	// MinSamples returns the number of observations classified as Warmup.
	MinSamples() int

	// SetInstrumentOptions sets the instrument options.
	SetInstrumentOptions(value instrument.Options) Options

	// InstrumentOptions returns the instrument options.
	InstrumentOptions() instrument.Options

	// Validate validates the options.
	Validate() error
}
