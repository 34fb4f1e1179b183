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

	"github.com/m3db/hbpe/src/percentile"
	"github.com/m3db/hbpe/src/x/instrument"

	"github.com/uber-go/tally"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

type detectorMetrics struct {
	observed tally.Counter
	warmup   tally.Counter
	normal   tally.Counter
	high     tally.Counter
	low      tally.Counter
}

func newDetectorMetrics(scope tally.Scope) detectorMetrics {
	scope = scope.SubScope("detector")
	return detectorMetrics{
		observed: scope.Counter("observed"),
		warmup:   scope.Counter("warmup"),
		normal:   scope.Counter("normal"),
		high:     scope.Counter("high"),
		low:      scope.Counter("low"),
	}
}

// detector is safe for concurrent use when its estimator is.
type detector struct {
	estimator  percentile.Estimator
	highRank   float64
	lowRank    float64
	minSamples uint64
	metrics    detectorMetrics
	logger     *zap.Logger

	observed atomic.Uint64
	warmup   atomic.Uint64
	normal   atomic.Uint64
	high     atomic.Uint64
	low      atomic.Uint64
}

// NewDetector creates a detector ranking values with the given estimator.
// Nil options select the defaults.
func NewDetector(estimator percentile.Estimator, opts Options) (Detector, error) {
	if estimator == nil {
		return nil, errors.New("no estimator provided")
	}
	if opts == nil {
		opts = NewOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	iOpts := opts.InstrumentOptions()
	if iOpts == nil {
		iOpts = instrument.NewOptions()
	}
	return &detector{
		estimator:  estimator,
		highRank:   opts.HighRank(),
		lowRank:    opts.LowRank(),
		minSamples: uint64(opts.MinSamples()),
		metrics:    newDetectorMetrics(iOpts.MetricsScope()),
		logger:     iOpts.Logger(),
	}, nil
}

func (d *detector) Observe(value float64) (Result, error) {
	rank, err := d.estimator.RankThenAdd(value)
	if err != nil {
		var zero Result
		return zero, err
	}

	n := d.observed.Inc()
	d.metrics.observed.Inc(1)
	if n <= d.minSamples {
		d.warmup.Inc()
		d.metrics.warmup.Inc(1)
		return Warmup, nil
	}

	result := d.classify(rank)
	switch result {
	case High:
		d.high.Inc()
		d.metrics.high.Inc(1)
	case Low:
		d.low.Inc()
		d.metrics.low.Inc(1)
	default:
		d.normal.Inc()
		d.metrics.normal.Inc(1)
		return result, nil
	}
	d.logger.Info("unusual value observed",
		zap.Float64("value", value),
		zap.Float64("rank", rank),
		zap.Stringer("result", result))
	return result, nil
}

func (d *detector) classify(rank float64) Result {
	if rank >= d.highRank {
		return High
	}
	if d.lowRank >= 0 && rank <= d.lowRank {
		return Low
	}
	return Normal
}

func (d *detector) Stats() Stats {
	return Stats{
		Observed: d.observed.Load(),
		Warmup:   d.warmup.Load(),
		Normal:   d.normal.Load(),
		High:     d.high.Load(),
		Low:      d.low.Load(),
	}
}
