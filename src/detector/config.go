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
	"github.com/m3db/hbpe/src/percentile"
	"github.com/m3db/hbpe/src/x/instrument"
)

// Configuration configures a detector and the estimator backing it.
type Configuration struct {
	// Estimator ranking the observed values.
	Estimator percentile.Configuration `yaml:"estimator"`

	// Rank at or above which a value is reported, 99.99 if unset.
	HighRank *float64 `yaml:"highRank"`

	// Rank at or below which a value is reported, disabled if unset.
	LowRank *float64 `yaml:"lowRank"`

	// Number of leading observations that are never reported, 100 if unset.
	MinSamples *int `yaml:"minSamples"`
}

// NewOptions creates detector options from the configuration.
func (c Configuration) NewOptions(iOpts instrument.Options) (Options, error) {
	opts := NewOptions().SetInstrumentOptions(iOpts)
	if c.HighRank != nil {
		opts = opts.SetHighRank(*c.HighRank)
	}
	if c.LowRank != nil {
		opts = opts.SetLowRank(*c.LowRank)
	}
	if c.MinSamples != nil {
		opts = opts.SetMinSamples(*c.MinSamples)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// NewDetector creates a detector from the configuration.
func (c Configuration) NewDetector(iOpts instrument.Options) (Detector, error) {
	opts, err := c.NewOptions(iOpts)
	if err != nil {
		return nil, err
	}
	estimator, err := c.Estimator.NewEstimator(iOpts)
	if err != nil {
		return nil, err
	}
	return NewDetector(estimator, opts)
}
