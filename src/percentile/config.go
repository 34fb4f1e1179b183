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
	"github.com/m3db/hbpe/src/x/instrument"
)

// Configuration configures an estimator.
type Configuration struct {
	// Number of decimal digits resolved by the finest bins, 1 if unset.
	Precision *int `yaml:"precision"`

	// Maximum number of bins before adjacent bins are merged.
	MaxBins int `yaml:"maxBins" validate:"min=0"`

	// Whether the estimator is safe for concurrent use.
	Synchronized bool `yaml:"synchronized"`
}

// NewOptions creates estimator options from the configuration.
func (c Configuration) NewOptions(iOpts instrument.Options) (Options, error) {
	opts := NewOptions().
		SetInstrumentOptions(iOpts).
		SetSynchronized(c.Synchronized)
	if c.Precision != nil {
		opts = opts.SetPrecision(*c.Precision)
	}
	if c.MaxBins != 0 {
		opts = opts.SetMaxBins(c.MaxBins)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// NewEstimator creates an estimator from the configuration.
func (c Configuration) NewEstimator(iOpts instrument.Options) (Estimator, error) {
	opts, err := c.NewOptions(iOpts)
	if err != nil {
		return nil, err
	}
	return NewEstimator(opts)
}
