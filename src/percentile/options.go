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

import (
	"fmt"

	"github.com/m3db/hbpe/src/x/instrument"
)

const (
	// The finest bins are 0.1 wide by default.
	defaultPrecision    = 1
	defaultMaxBins      = 1 << 14
	defaultSynchronized = false

	minPrecision = 0
	maxPrecision = 15
	minMaxBins   = 4
)

type options struct {
	precision      int
	maxBins        int
	synchronized   bool
	instrumentOpts instrument.Options
}

// NewOptions creates a new set of estimator options.
func NewOptions() Options {
	return options{
		precision:      defaultPrecision,
		maxBins:        defaultMaxBins,
		synchronized:   defaultSynchronized,
		instrumentOpts: instrument.NewOptions(),
	}
}

func (o options) SetPrecision(value int) Options {
	o.precision = value
	return o
}

func (o options) Precision() int {
	return o.precision
}

func (o options) SetMaxBins(value int) Options {
	o.maxBins = value
	return o
}

func (o options) MaxBins() int {
	return o.maxBins
}

func (o options) SetSynchronized(value bool) Options {
	o.synchronized = value
	return o
}

func (o options) Synchronized() bool {
	return o.synchronized
}

func (o options) SetInstrumentOptions(value instrument.Options) Options {
	o.instrumentOpts = value
	return o
}

func (o options) InstrumentOptions() instrument.Options {
	return o.instrumentOpts
}

func (o options) Validate() error {
	if o.precision < minPrecision || o.precision > maxPrecision {
		return fmt.Errorf("%w: %d not in [%d, %d]",
			errInvalidPrecision, o.precision, minPrecision, maxPrecision)
	}
	if o.maxBins < minMaxBins {
		return fmt.Errorf("%w: %d is less than %d", errInvalidMaxBins, o.maxBins, minMaxBins)
	}
	return nil
}
