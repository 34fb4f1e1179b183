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
	"math"

	"github.com/m3db/hbpe/src/x/instrument"

	"go.uber.org/zap"
)

// estimator is not safe for concurrent use, see NewSynchronizedEstimator.
type estimator struct {
	layout  layout
	count   uint64
	min     float64
	max     float64
	metrics estimatorMetrics
	logger  *zap.Logger
}

// NewEstimator creates a new estimator. Nil options select the defaults.
func NewEstimator(opts Options) (Estimator, error) {
	if opts == nil {
		opts = NewOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	e := newEstimator(opts)
	if opts.Synchronized() {
		return newSynchronizedEstimator(e), nil
	}
	return e, nil
}

func newEstimator(opts Options) *estimator {
	iOpts := opts.InstrumentOptions()
	if iOpts == nil {
		iOpts = instrument.NewOptions()
	}
	return &estimator{
		layout:  newLayout(opts.Precision(), opts.MaxBins()),
		min:     math.NaN(),
		max:     math.NaN(),
		metrics: newEstimatorMetrics(iOpts.MetricsScope()),
		logger:  iOpts.Logger(),
	}
}

func (e *estimator) Add(value float64) error {
	if err := e.validateValue(value); err != nil {
		return err
	}
	e.add(value)
	return nil
}

func (e *estimator) Percentile(p float64) (float64, error) {
	if math.IsNaN(p) || p < 0 || p > 100 {
		e.metrics.invalidInputs.Inc(1)
		return 0, fmt.Errorf("%w: percentile %v not in [0, 100]", ErrInvalidInput, p)
	}
	if e.count == 0 {
		return 0, ErrEmpty
	}
	switch p {
	case 0:
		return e.min, nil
	case 100:
		return e.max, nil
	}

	// Linear interpolation between the closest ranks, as Excel PERCENTILE.INC.
	var (
		pos   = p / 100 * float64(e.count-1)
		k     = math.Floor(pos)
		frac  = pos - k
		lower = e.orderStatistic(uint64(k))
	)
	if frac == 0 {
		return lower, nil
	}
	upper := e.orderStatistic(uint64(k) + 1)
	return interpolate(lower, upper, frac), nil
}

func (e *estimator) PercentileRank(value float64) (float64, error) {
	if err := e.validateValue(value); err != nil {
		return 0, err
	}
	if e.count == 0 {
		return 0, ErrEmpty
	}
	return e.rank(value), nil
}

// RankThenAdd ranks value against the values recorded before the call. The
// first value has nothing to rank against and gets rank zero.
func (e *estimator) RankThenAdd(value float64) (float64, error) {
	if err := e.validateValue(value); err != nil {
		return 0, err
	}
	var rank float64
	if e.count > 0 {
		rank = e.rank(value)
	}
	e.add(value)
	return rank, nil
}

func (e *estimator) Count() uint64 { return e.count }

func (e *estimator) Min() float64 { return e.min }

func (e *estimator) Max() float64 { return e.max }

func (e *estimator) BinWidth() float64 {
	if e.layout.empty() {
		return 0
	}
	return e.layout.width
}

func (e *estimator) Bins() []Bin { return e.layout.bins() }

func (e *estimator) validateValue(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		e.metrics.invalidInputs.Inc(1)
		return fmt.Errorf("%w: value %v is not finite", ErrInvalidInput, value)
	}
	return nil
}

func (e *estimator) add(value float64) {
	i, ok := e.layout.locate(value)
	if !ok {
		e.grow(value)
		i, _ = e.layout.locate(value)
	}
	e.layout.incr(i)

	if e.count == 0 || value < e.min {
		e.min = value
	}
	if e.count == 0 || value > e.max {
		e.max = value
	}
	e.count++
}

func (e *estimator) grow(value float64) {
	res := e.layout.grow(value)
	if res.initialize {
		return
	}
	e.metrics.rangeExtensions.Inc(1)
	if res.resized {
		e.metrics.arenaResizes.Inc(1)
	}
	if res.coarsened > 0 {
		e.metrics.binCoarsenings.Inc(int64(res.coarsened))
		e.logger.Debug("coarsened percentile bins",
			zap.Float64("value", value),
			zap.Int("level", e.layout.level),
			zap.Float64("binWidth", e.layout.width),
			zap.Int("numBins", e.layout.numBins()))
	}
}

// orderStatistic estimates the k-th smallest recorded value, counting from
// zero. The observations of a bin are spread evenly over the part of the
// bin within [min, max].
func (e *estimator) orderStatistic(k uint64) float64 {
	if k == 0 {
		return e.min
	}
	if k >= e.count-1 {
		return e.max
	}
	value := e.max
	e.layout.walk(func(_ int, b Bin, before uint64) bool {
		if k >= before+b.Count {
			return true
		}
		var (
			lower = math.Max(b.Lower, e.min)
			upper = math.Min(b.Upper, e.max)
			frac  = (float64(k-before) + 0.5) / float64(b.Count)
		)
		value = interpolate(lower, upper, frac)
		return false
	})
	return value
}

// rank returns the percentage of recorded values in the bins up to and
// including the bin holding value. Every value of that bin counts as less
// than or equal to value, so the rank overstates by at most 100*c/n for a
// bin of c values.
func (e *estimator) rank(value float64) float64 {
	if value < e.min {
		return 0
	}
	if value >= e.max {
		return 100
	}
	var (
		idx, _     = e.layout.locate(value)
		cumulative uint64
	)
	e.layout.walk(func(i int, b Bin, before uint64) bool {
		if i < idx {
			return true
		}
		cumulative = before + b.Count
		return false
	})
	return 100 * float64(cumulative) / float64(e.count)
}

// interpolate returns the point at frac of [lower, upper], never past upper
// when the arithmetic rounds. Bounds near the ends of the float64 range,
// where upper-lower overflows, are weighted separately.
func interpolate(lower, upper, frac float64) float64 {
	if d := upper - lower; !math.IsInf(d, 0) {
		return math.Min(lower+frac*d, upper)
	}
	return math.Min(lower*(1-frac)+upper*frac, upper)
}
