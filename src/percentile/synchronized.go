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

import "sync"

// synchronizedEstimator serializes writers and lets queries run in
// parallel, every call observing a consistent snapshot of the bins.
type synchronizedEstimator struct {
	sync.RWMutex

	estimator *estimator
}

// NewSynchronizedEstimator creates a new estimator that is safe for
// concurrent use.
func NewSynchronizedEstimator(opts Options) (Estimator, error) {
	if opts == nil {
		opts = NewOptions()
	}
	return NewEstimator(opts.SetSynchronized(true))
}

func newSynchronizedEstimator(e *estimator) *synchronizedEstimator {
	return &synchronizedEstimator{estimator: e}
}

func (s *synchronizedEstimator) Add(value float64) error {
	s.Lock()
	err := s.estimator.Add(value)
	s.Unlock()
	return err
}

func (s *synchronizedEstimator) Percentile(p float64) (float64, error) {
	s.RLock()
	v, err := s.estimator.Percentile(p)
	s.RUnlock()
	return v, err
}

func (s *synchronizedEstimator) PercentileRank(value float64) (float64, error) {
	s.RLock()
	rank, err := s.estimator.PercentileRank(value)
	s.RUnlock()
	return rank, err
}

func (s *synchronizedEstimator) RankThenAdd(value float64) (float64, error) {
	s.Lock()
	rank, err := s.estimator.RankThenAdd(value)
	s.Unlock()
	return rank, err
}

func (s *synchronizedEstimator) Count() uint64 {
	s.RLock()
	count := s.estimator.Count()
	s.RUnlock()
	return count
}

func (s *synchronizedEstimator) Min() float64 {
	s.RLock()
	v := s.estimator.Min()
	s.RUnlock()
	return v
}

func (s *synchronizedEstimator) Max() float64 {
	s.RLock()
	v := s.estimator.Max()
	s.RUnlock()
	return v
}

func (s *synchronizedEstimator) BinWidth() float64 {
	s.RLock()
	width := s.estimator.BinWidth()
	s.RUnlock()
	return width
}

func (s *synchronizedEstimator) Bins() []Bin {
	s.RLock()
	bins := s.estimator.Bins()
	s.RUnlock()
	return bins
}
