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

package detector

import (
	"errors"
	"fmt"

	"github.com/m3db/hbpe/src/x/instrument"
)

const (
	defaultHighRank   = 99.99
	defaultLowRank    = -1
	defaultMinSamples = 100
)

var (
	errInvalidHighRank   = errors.New("invalid high rank")
	errInvalidLowRank    = errors.New("invalid low rank")
	errInvalidMinSamples = errors.New("invalid min samples")
)

type options struct {
	highRank       float64
	lowRank        float64
	minSamples     int
	instrumentOpts instrument.Options
}

// NewOptions creates a new set of detector options.
func NewOptions() Options {
	return options{
		highRank:       defaultHighRank,
		lowRank:        defaultLowRank,
		minSamples:     defaultMinSamples,
		instrumentOpts: instrument.NewOptions(),
	}
}

func (o options) SetHighRank(value float64) Options {
	o.highRank = value
	return o
}

func (o options) HighRank() float64 {
	return o.highRank
}

func (o options) SetLowRank(value float64) Options {
	o.lowRank = value
	return o
}

func (o options) LowRank() float64 {
	return o.lowRank
}

func (o options) SetMinSamples(value int) Options {
	o.minSamples = value
	return o
}

func (o options) MinSamples() int {
	return o.minSamples
}

func (o options) SetInstrumentOptions(value instrument.Options) Options {
	o.instrumentOpts = value
	return o
}

func (o options) InstrumentOptions() instrument.Options {
	return o.instrumentOpts
}

func (o options) Validate() error {
	// NaN fails both comparisons.
	if !(o.highRank > 0 && o.highRank <= 100) {
		return fmt.Errorf("%w: %v not in (0, 100]", errInvalidHighRank, o.highRank)
	}
	if !(o.lowRank < o.highRank) {
		return fmt.Errorf("%w: %v is not below high rank %v",
			errInvalidLowRank, o.lowRank, o.highRank)
	}
	if o.minSamples < 0 {
		return fmt.Errorf("%w: %d is negative", errInvalidMinSamples, o.minSamples)
	}
	return nil
}
